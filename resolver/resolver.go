// Package resolver maps a selected insurer name to its appeal address.
package resolver

import (
	"github.com/undeniable-app/undeniable/blame"
	"github.com/undeniable-app/undeniable/directory"
	"github.com/undeniable-app/undeniable/utils/constant"
	"github.com/undeniable-app/undeniable/utils/helpers"
)

// UnresolvedMessage is shown for both unlisted and unknown companies.
const UnresolvedMessage = "Email not found, please locate the contact email via your insurance company"

// Resolution is the outcome of a lookup. Err is nil when the address was
// found or nothing has been selected yet.
type Resolution struct {
	Address string
	Err     blame.Blame
}

// Resolved reports whether an address was found.
func (r Resolution) Resolved() bool {
	return r.Err == nil && r.Address != ""
}

// Message is the user facing notice for an unresolved lookup, or "".
func (r Resolution) Message() string {
	if r.Err == nil {
		return ""
	}
	return r.Err.FetchMessage()
}

// Resolve looks selected up in dir by exact name. An empty selection is not
// an error.
func Resolve(selected string, dir *directory.Directory) Resolution {
	if helpers.IsEmpty(selected) {
		return Resolution{}
	}
	if selected == constant.NotListedCompany {
		return Resolution{Err: blame.UnlistedCompany()}
	}
	company, ok := dir.Lookup(selected)
	if !ok || !company.HasEmail() {
		return Resolution{Err: blame.CompanyNotFound(selected)}
	}
	return Resolution{Address: company.Email}
}
