// Package directory loads the insurer contact directory: an ordered,
// immutable list of insurance companies and their appeal addresses.
package directory

import (
	"slices"

	"github.com/undeniable-app/undeniable/utils/constant"
)

// InsuranceCompany is one directory row.
type InsuranceCompany struct {
	Name  string `json:"name" yaml:"name" validate:"required"`
	Email string `json:"email" yaml:"email" validate:"email_or_blank"`
	// TemplateID is reserved for per-company letter variants and unused today.
	TemplateID string `json:"template_id,omitempty" yaml:"template_id,omitempty"`
}

// HasEmail reports whether an address is on file.
func (c InsuranceCompany) HasEmail() bool {
	return c.Email != "" && c.Email != constant.BlankEmail
}

// Directory is the loaded, read-only company list. Order is the source row order.
type Directory struct {
	companies []InsuranceCompany
	index     map[string]int
}

// New builds a Directory from companies. Later duplicates of a name are ignored.
func New(companies ...InsuranceCompany) *Directory {
	d := &Directory{
		companies: make([]InsuranceCompany, 0, len(companies)),
		index:     make(map[string]int, len(companies)),
	}
	for _, c := range companies {
		d.add(c)
	}
	return d
}

func (d *Directory) add(c InsuranceCompany) bool {
	if _, exists := d.index[c.Name]; exists {
		return false
	}
	d.index[c.Name] = len(d.companies)
	d.companies = append(d.companies, c)
	return true
}

// Lookup finds a company by exact name.
func (d *Directory) Lookup(name string) (InsuranceCompany, bool) {
	if d == nil {
		return InsuranceCompany{}, false
	}
	i, ok := d.index[name]
	if !ok {
		return InsuranceCompany{}, false
	}
	return d.companies[i], true
}

// Companies returns a copy of the rows in display order.
func (d *Directory) Companies() []InsuranceCompany {
	if d == nil {
		return nil
	}
	return slices.Clone(d.companies)
}

// Names returns the company names in display order.
func (d *Directory) Names() []string {
	if d == nil {
		return nil
	}
	names := make([]string, len(d.companies))
	for i, c := range d.companies {
		names[i] = c.Name
	}
	return names
}

// Options returns the selectable values: every name followed by the
// "not listed" sentinel.
func (d *Directory) Options() []string {
	return append(d.Names(), constant.NotListedCompany)
}

func (d *Directory) Len() int {
	if d == nil {
		return 0
	}
	return len(d.companies)
}
