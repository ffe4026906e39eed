// Package form holds the partial appeal form and keeps every value
// sanitized before anything downstream reads it.
package form

import (
	"maps"
	"slices"
	"sync"

	validatorpkg "github.com/go-playground/validator/v10"
	"github.com/undeniable-app/undeniable/adapters/validator"
	"github.com/undeniable-app/undeniable/letter"
)

// Values is a snapshot of the form. Empty strings are unfilled fields.
type Values struct {
	Name             string `json:"name" form:"name" validate:"omitempty,alphaspace,max=30"`
	InsuranceCompany string `json:"insurance_company" form:"insurance_company" validate:"omitempty,max=120"`
	StateOfResidence string `json:"state_of_residence" form:"state_of_residence" validate:"omitempty,len=2,usstate"`
	StateOfCare      string `json:"state_of_care" form:"state_of_care" validate:"omitempty,len=2,usstate"`
	ClaimNumber      string `json:"claim_number" form:"claim_number" validate:"omitempty,alphanum,min=3,max=30"`
}

// Get returns the value of field.
func (v Values) Get(field Field) string {
	switch field {
	case FieldName:
		return v.Name
	case FieldInsuranceCompany:
		return v.InsuranceCompany
	case FieldStateOfResidence:
		return v.StateOfResidence
	case FieldStateOfCare:
		return v.StateOfCare
	case FieldClaimNumber:
		return v.ClaimNumber
	}
	return ""
}

func (v *Values) set(field Field, value string) bool {
	var target *string
	switch field {
	case FieldName:
		target = &v.Name
	case FieldInsuranceCompany:
		target = &v.InsuranceCompany
	case FieldStateOfResidence:
		target = &v.StateOfResidence
	case FieldStateOfCare:
		target = &v.StateOfCare
	case FieldClaimNumber:
		target = &v.ClaimNumber
	default:
		return false
	}
	*target = value
	return true
}

// Sanitized returns a copy with every field passed through Sanitize.
func (v Values) Sanitized() Values {
	var out Values
	for _, f := range Fields {
		out.set(f, Sanitize(f, v.Get(f)))
	}
	return out
}

// Letter returns the template fields.
func (v Values) Letter() letter.Fields {
	return letter.Fields{
		Name:             v.Name,
		ClaimNumber:      v.ClaimNumber,
		StateOfResidence: v.StateOfResidence,
		StateOfCare:      v.StateOfCare,
	}
}

// Complete reports whether every required field is filled. State of care is optional.
func (v Values) Complete() bool {
	return v.Name != "" && v.InsuranceCompany != "" && v.StateOfResidence != "" && v.ClaimNumber != ""
}

var (
	formValidator     *validator.Validator
	formValidatorOnce sync.Once
)

func getValidator() *validator.Validator {
	formValidatorOnce.Do(func() {
		formValidator = validator.NewValidator()
		_ = formValidator.RegisterValidation("usstate", func(fl validatorpkg.FieldLevel) bool {
			return IsRegion(fl.Field().String())
		})
	})
	return formValidator
}

// Validate returns per-field messages keyed by json name. Unfilled fields
// are not reported, so a partial form is valid.
func (v Values) Validate() map[string]string {
	errs := getValidator().ValidateStruct(v)
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Listener is notified with a snapshot after every change.
type Listener func(Values)

// State is the single source of truth for one form session. Updates are
// applied and delivered to listeners in arrival order.
type State struct {
	mu        sync.Mutex
	values    Values
	listeners map[int]Listener
	nextID    int
}

// NewState returns an empty form.
func NewState() *State {
	return &State{listeners: map[int]Listener{}}
}

// Set sanitizes raw, stores it and notifies listeners. It returns the
// stored value.
func (s *State) Set(field Field, raw string) string {
	clean := Sanitize(field, raw)

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.values.set(field, clean) {
		return ""
	}
	snapshot := s.values
	for _, id := range s.listenerIDs() {
		s.listeners[id](snapshot)
	}
	return clean
}

// SetAll applies every field of raw as one change.
func (s *State) SetAll(raw Values) Values {
	clean := raw.Sanitized()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.values = clean
	for _, id := range s.listenerIDs() {
		s.listeners[id](clean)
	}
	return clean
}

// Values returns the current snapshot.
func (s *State) Values() Values {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.values
}

// Subscribe registers fn and returns a function that removes it. Listeners
// run while the state lock is held and must not call back into the State.
func (s *State) Subscribe(fn Listener) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners, id)
	}
}

// Reset clears every field without notifying.
func (s *State) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values = Values{}
}

// listenerIDs returns registration order so delivery is deterministic.
func (s *State) listenerIDs() []int {
	return slices.Sorted(maps.Keys(s.listeners))
}
