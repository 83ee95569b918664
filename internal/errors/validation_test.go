package errors

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFieldName(t *testing.T) {
	require.Equal(t, "user_name", fieldName("UserName"))
	require.Equal(t, "password2", fieldName("Password2"))
	require.Equal(t, "due_date", fieldName("DueDate"))
	require.Equal(t, "email", fieldName("Email"))
}

func TestValidEmail(t *testing.T) {
	require.True(t, ValidEmail("user@example.com"))
	require.False(t, ValidEmail("not-an-email"))
	require.False(t, ValidEmail(""))
}

func TestFieldErrors_Add(t *testing.T) {
	fields := FieldErrors{}
	fields.Add("email", "Email is already in use.")
	fields.Add("email", "Enter a valid email address.")

	require.Len(t, fields["email"], 2)
}
