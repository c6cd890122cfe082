package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	domainerrors "panchayat.backend/internal/domain/errors"
)

func TestDecodeRegistration_Variants(t *testing.T) {
	cases := []struct {
		name    string
		payload string
		role    UserRole
	}{
		{
			name: "citizen",
			payload: `{"User_name":"alice","Password":"password1","Name":"Alice","Contact_number":"99",
				"User_type":"CITIZEN","Date_of_birth":"1990-04-01","Gender":"F","Address":"Ward 3",
				"Educational_qualification":"BSc","Occupation":"Farmer"}`,
			role: RoleCitizen,
		},
		{
			name: "admin",
			payload: `{"User_name":"root_admin","Password":"password1","Name":"Root","Contact_number":"1",
				"User_type":"ADMIN","Gender":"M","Date_of_birth":"1980-01-01","Address":"Office"}`,
			role: RoleAdmin,
		},
		{
			name:    "agency",
			payload: `{"User_name":"waterboard","Password":"password1","Name":"Water Board","Contact_number":"1","User_type":"GOVERNMENT_AGENCY","Role":"Water"}`,
			role:    RoleGovernmentAgency,
		},
		{
			name:    "employee",
			payload: `{"User_name":"clerk","Password":"password1","Name":"Clerk","Contact_number":"1","User_type":"PANCHAYAT_EMPLOYEE","Role":"Clerk"}`,
			role:    RolePanchayatEmployee,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			reg, err := DecodeRegistration([]byte(tc.payload))
			require.NoError(t, err)
			assert.Equal(t, tc.role, reg.UserType)
			assert.Equal(t, tc.role, reg.Profile.Role())
		})
	}
}

func TestDecodeRegistration_CitizenFields(t *testing.T) {
	reg, err := DecodeRegistration([]byte(`{"User_name":"alice","Password":"password1","Name":"Alice",
		"Email":"alice@example.com","Contact_number":"99","User_type":"CITIZEN","Date_of_birth":"1990-04-01",
		"Date_of_death":null,"Gender":"F","Address":"Ward 3","Educational_qualification":"BSc","Occupation":"Farmer"}`))
	require.NoError(t, err)

	citizen, ok := reg.Profile.(CitizenRegistration)
	require.True(t, ok)
	assert.Equal(t, "1990-04-01", citizen.DateOfBirth.String())
	assert.Nil(t, citizen.DateOfDeath)
	assert.True(t, reg.Email.Valid)
	assert.Equal(t, "alice@example.com", reg.Email.String)
}

func TestDecodeRegistration_Rejects(t *testing.T) {
	cases := map[string]string{
		"malformed":        `{"User_name":`,
		"unknown type":     `{"User_name":"alice","Password":"password1","Name":"A","Contact_number":"1","User_type":"KING"}`,
		"missing type":     `{"User_name":"alice","Password":"password1","Name":"A","Contact_number":"1"}`,
		"short username":   `{"User_name":"al","Password":"password1","Name":"A","Contact_number":"1","User_type":"PANCHAYAT_EMPLOYEE","Role":"x"}`,
		"spaced username":  `{"User_name":"al ice","Password":"password1","Name":"A","Contact_number":"1","User_type":"PANCHAYAT_EMPLOYEE","Role":"x"}`,
		"short password":   `{"User_name":"alice","Password":"pw","Name":"A","Contact_number":"1","User_type":"PANCHAYAT_EMPLOYEE","Role":"x"}`,
		"bad email":        `{"User_name":"alice","Password":"password1","Name":"A","Email":"nope","Contact_number":"1","User_type":"PANCHAYAT_EMPLOYEE","Role":"x"}`,
		"missing role":     `{"User_name":"alice","Password":"password1","Name":"A","Contact_number":"1","User_type":"GOVERNMENT_AGENCY"}`,
		"citizen no dob":   `{"User_name":"alice","Password":"password1","Name":"A","Contact_number":"1","User_type":"CITIZEN","Gender":"F","Address":"x","Educational_qualification":"x","Occupation":"x"}`,
		"bad date":         `{"User_name":"alice","Password":"password1","Name":"A","Contact_number":"1","User_type":"CITIZEN","Date_of_birth":"01/02/1990","Gender":"F","Address":"x","Educational_qualification":"x","Occupation":"x"}`,
		"death before dob": `{"User_name":"alice","Password":"password1","Name":"A","Contact_number":"1","User_type":"CITIZEN","Date_of_birth":"1990-01-01","Date_of_death":"1980-01-01","Gender":"F","Address":"x","Educational_qualification":"x","Occupation":"x"}`,
		"admin no gender":  `{"User_name":"alice","Password":"password1","Name":"A","Contact_number":"1","User_type":"ADMIN","Role":"x"}`,
	}

	for name, payload := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := DecodeRegistration([]byte(payload))
			require.Error(t, err)
			assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
		})
	}
}

func TestRegistration_ProfileMustMatchTag(t *testing.T) {
	reg := &Registration{
		RegistrationBase: RegistrationBase{
			Username: "alice", Password: "password1", Name: "A", ContactNumber: "1", UserType: RoleAdmin,
		},
		Profile: AgencyRegistration{Title: "x"},
	}
	assert.ErrorIs(t, reg.Validate(), domainerrors.ErrInvalidInput)

	reg.Profile = nil
	assert.ErrorIs(t, reg.Validate(), domainerrors.ErrInvalidInput)
}
