package repository

import (
	"errors"
	"testing"

	"hostel_admin_backend/internals/features/security/gatelog/model"
)

func TestCheckTransition(t *testing.T) {
	cases := []struct {
		from, to string
		ok       bool
	}{
		{model.SecurityStatusPending, model.SecurityStatusOut, true},
		{model.SecurityStatusOut, model.SecurityStatusIn, true},
		{model.SecurityStatusPending, model.SecurityStatusIn, false},
		{model.SecurityStatusIn, model.SecurityStatusOut, false},
		{model.SecurityStatusOut, model.SecurityStatusOut, false},
		{model.SecurityStatusIn, model.SecurityStatusIn, false},
		{model.SecurityStatusOut, model.SecurityStatusPending, false},
		{"", model.SecurityStatusOut, false},
		{model.SecurityStatusPending, "", false},
	}
	for _, tc := range cases {
		err := CheckTransition(tc.from, tc.to)
		if tc.ok {
			if err != nil {
				t.Errorf("%q -> %q: %v", tc.from, tc.to, err)
			}
			continue
		}
		if !errors.Is(err, ErrInvalidTransition) {
			t.Errorf("%q -> %q: err = %v, want ErrInvalidTransition", tc.from, tc.to, err)
		}
	}
}
