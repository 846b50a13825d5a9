package extension

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_IdentityOf_IsDeterministic(t *testing.T) {
	first, err := IdentityOf(basicDialog{})
	require.NoError(t, err)
	second, err := IdentityOf(basicDialog{})
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.False(t, first.IsEmpty())
}

func Test_IdentityOf_DistinctTypes(t *testing.T) {
	a, err := IdentityOf(basicDialog{})
	require.NoError(t, err)
	b, err := IdentityOf(fancyDialog{})
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func Test_IdentityOf_IgnoresInstanceState(t *testing.T) {
	a, err := IdentityOf(versionedDialog{version: "1.0.0"})
	require.NoError(t, err)
	b, err := IdentityOf(versionedDialog{version: "2.0.0"})
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func Test_IdentityOf_DereferencesPointers(t *testing.T) {
	byValue, err := IdentityOf(basicDialog{})
	require.NoError(t, err)
	byPointer, err := IdentityOf(&basicDialog{})
	require.NoError(t, err)

	assert.Equal(t, byValue, byPointer)
}

func Test_IdentityOf_UsesAuthorAssignedKey(t *testing.T) {
	id, err := IdentityOf(namedDialog{})
	require.NoError(t, err)
	assert.Equal(t, ID("dialog.named"), id)
}

func Test_IdentityOf_RejectsAnonymousTypes(t *testing.T) {
	tests := []struct {
		name string
		impl any
	}{
		{"nil", nil},
		{"anonymous struct", struct{ X int }{}},
		{"func", func() {}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := IdentityOf(tt.impl)
			assert.ErrorIs(t, err, ErrAnonymousType)
		})
	}
}

type badKeyDialog struct{}

func (badKeyDialog) Confirm(msg string) bool { return true }

func (badKeyDialog) ExtensionID() string { return "-leading-dash" }

func Test_IdentityOf_RejectsInvalidAuthorKey(t *testing.T) {
	_, err := IdentityOf(badKeyDialog{})
	assert.ErrorIs(t, err, ErrInvalidID)
}

func Test_MustIdentityOf_Panics(t *testing.T) {
	assert.Panics(t, func() {
		MustIdentityOf(struct{}{})
	})
}
