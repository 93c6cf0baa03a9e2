package naming

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/nestkit/create-module/internal/errors"
)

func TestNewForms(t *testing.T) {
	forms := NewForms("user-profile")

	assert.Equal(t, "user-profile", forms.Raw)
	assert.Equal(t, "UserProfile", forms.Pascal)
	assert.Equal(t, "userProfile", forms.Camel)
	assert.Equal(t, "user-profile", forms.Kebab)
	assert.Equal(t, "USER_PROFILE", forms.SnakeUpper)
}

func TestCaseConversions(t *testing.T) {
	tests := []struct {
		input      string
		pascal     string
		camel      string
		kebab      string
		snakeUpper string
	}{
		{"users", "Users", "users", "users", "USERS"},
		{"order-line-item", "OrderLineItem", "orderLineItem", "order-line-item", "ORDER_LINE_ITEM"},
		{"UserProfile", "Userprofile", "userprofile", "user-profile", "USER_PROFILE"},
		{"user_profile", "User_profile", "user_profile", "user-profile", "USER_PROFILE"},
		{"user profile", "User profile", "user profile", "user-profile", "USER_PROFILE"},
		{"v2-api", "V2Api", "v2Api", "v2-api", "V2_API"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.pascal, Pascal(tt.input), "Pascal")
			assert.Equal(t, tt.camel, Camel(tt.input), "Camel")
			assert.Equal(t, tt.kebab, Kebab(tt.input), "Kebab")
			assert.Equal(t, tt.snakeUpper, SnakeUpper(tt.input), "SnakeUpper")
		})
	}
}

func TestKebabOfPascalRoundTrips(t *testing.T) {
	for _, name := range []string{"users", "user-profile", "order-line-item", "ab-cd2", "Billing-Account"} {
		t.Run(name, func(t *testing.T) {
			normalized, err := Normalize(name)
			require.NoError(t, err)
			assert.Equal(t, Kebab(normalized), Kebab(Pascal(normalized)))
		})
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{"lowercase", "users", "users", nil},
		{"mixed case lowercased", "UserProfile", "userprofile", nil},
		{"trims whitespace", "  orders  ", "orders", nil},
		{"hyphenated", "user-profile", "user-profile", nil},
		{"ends with digit", "report2", "report2", nil},
		{"empty", "", "", oerrors.ErrInvalidName},
		{"whitespace only", "   ", "", oerrors.ErrInvalidName},
		{"leading hyphen", "-bad", "", oerrors.ErrInvalidCharacter},
		{"trailing hyphen", "bad-", "", oerrors.ErrInvalidCharacter},
		{"leading digit", "1users", "", oerrors.ErrInvalidCharacter},
		{"underscore", "user_profile", "", oerrors.ErrInvalidCharacter},
		{"inner space", "user profile", "", oerrors.ErrInvalidCharacter},
		{"single character", "a", "", oerrors.ErrInvalidCharacter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(tt.input)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				assert.True(t, errors.Is(err, oerrors.ErrValidation))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	for _, name := range []string{"Users", " user-profile ", "ORDER-Line-2", "ab"} {
		t.Run(name, func(t *testing.T) {
			once, err := Normalize(name)
			require.NoError(t, err)
			twice, err := Normalize(once)
			require.NoError(t, err)
			assert.Equal(t, once, twice)
		})
	}
}

func TestClassName(t *testing.T) {
	assert.Equal(t, "UserProfileModule", ClassName("user-profile"))
	assert.Equal(t, "UsersModule", ClassName("users"))
}

func TestNormalizeEntity(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{name: "pascal", input: "UserProfile", want: "UserProfile"},
		{name: "underscore", input: "user_profile", want: "user_profile"},
		{name: "space", input: "  user profile ", want: "user profile"},
		{name: "digits", input: "user_1", want: "user_1"},
		{name: "empty", input: "   ", wantErr: oerrors.ErrInvalidName},
		{name: "slash", input: "a/b", wantErr: oerrors.ErrInvalidCharacter},
		{name: "backslash", input: `a\b`, wantErr: oerrors.ErrInvalidCharacter},
		{name: "parent", input: "../x", wantErr: oerrors.ErrInvalidCharacter},
		{name: "dots", input: "a..b", wantErr: oerrors.ErrInvalidCharacter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeEntity(tt.input)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr), "expected %v, got %v", tt.wantErr, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEntityForms(t *testing.T) {
	for _, raw := range []string{"UserProfile", "user_profile", "user profile", "user-profile"} {
		t.Run(raw, func(t *testing.T) {
			forms := EntityForms(raw)

			assert.Equal(t, raw, forms.Raw)
			assert.Equal(t, "UserProfile", forms.Pascal)
			assert.Equal(t, "userProfile", forms.Camel)
			assert.Equal(t, "user-profile", forms.Kebab)
			assert.Equal(t, "USER_PROFILE", forms.SnakeUpper)
		})
	}
}
