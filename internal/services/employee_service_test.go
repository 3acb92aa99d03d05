package services

import (
	"testing"

	"github.com/staffdesk/company-platform/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmployeeCreateValidation(t *testing.T) {
	svc := NewEmployeeService(newTestDB(t))

	cases := []struct {
		name   string
		mutate func(*EmployeeInput)
	}{
		{"empty identity card", func(in *EmployeeInput) { in.IdentityCard = "" }},
		{"non-alphanumeric identity card", func(in *EmployeeInput) { in.IdentityCard = "X-1!" }},
		{"too young", func(in *EmployeeInput) { in.Age = 17 }},
		{"too old", func(in *EmployeeInput) { in.Age = 71 }},
		{"zero salary", func(in *EmployeeInput) { in.BaseSalary = 0 }},
		{"negative salary", func(in *EmployeeInput) { in.BaseSalary = -100 }},
		{"empty name", func(in *EmployeeInput) { in.Name = "" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := testEmployeeInput("E1")
			tc.mutate(&in)
			_, err := svc.Create(in, models.EmployeeTypeProgrammer)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}

	_, err := svc.Create(testEmployeeInput("E1"), "manager")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestEmployeeCreateDuplicateIdentityCard(t *testing.T) {
	svc := NewEmployeeService(newTestDB(t))

	_, err := svc.Create(testEmployeeInput("DUP1"), models.EmployeeTypeProgrammer)
	require.NoError(t, err)

	_, err = svc.Create(testEmployeeInput("DUP1"), models.EmployeeTypeLeader)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestEmployeeGetAbsentReturnsNil(t *testing.T) {
	svc := NewEmployeeService(newTestDB(t))

	employee, err := svc.Get(999)
	require.NoError(t, err)
	assert.Nil(t, employee)
}

func TestEmployeeUpdatePartial(t *testing.T) {
	svc := NewEmployeeService(newTestDB(t))

	created, err := svc.Create(testEmployeeInput("U1"), models.EmployeeTypeProgrammer)
	require.NoError(t, err)

	newAge := 45
	updated, err := svc.Update(created.ID, EmployeeUpdate{Age: &newAge})
	require.NoError(t, err)
	assert.Equal(t, 45, updated.Age)
	assert.Equal(t, created.Name, updated.Name)
	assert.Equal(t, created.BaseSalary, updated.BaseSalary)

	badSalary := -1.0
	_, err = svc.Update(created.ID, EmployeeUpdate{BaseSalary: &badSalary})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestEmployeeUpdateAbsentReturnsNil(t *testing.T) {
	svc := NewEmployeeService(newTestDB(t))

	newAge := 40
	employee, err := svc.Update(12345, EmployeeUpdate{Age: &newAge})
	require.NoError(t, err)
	assert.Nil(t, employee)
}

func TestEmployeeList(t *testing.T) {
	svc := NewEmployeeService(newTestDB(t))

	for _, card := range []string{"L1", "L2", "L3"} {
		_, err := svc.Create(testEmployeeInput(card), models.EmployeeTypeProgrammer)
		require.NoError(t, err)
	}

	employees, err := svc.List(0, 100)
	require.NoError(t, err)
	assert.Len(t, employees, 3)

	page, err := svc.List(1, 1)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "L2", page[0].IdentityCard)
}

func TestEmployeeDelete(t *testing.T) {
	svc := NewEmployeeService(newTestDB(t))

	created, err := svc.Create(testEmployeeInput("D1"), models.EmployeeTypeProgrammer)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(created.ID))

	employee, err := svc.Get(created.ID)
	require.NoError(t, err)
	assert.Nil(t, employee)

	assert.ErrorIs(t, svc.Delete(created.ID), ErrNotFound)
}
