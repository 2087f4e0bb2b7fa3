package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-at-least-32-chars-long"

func TestNewRequiresSecret(t *testing.T) {
	_, err := New("", DefaultTTL)
	require.Error(t, err)
}

func TestIssueVerifyRoundtrip(t *testing.T) {
	svc, err := New(testSecret, DefaultTTL)
	require.NoError(t, err)

	payload := Payload{
		ID:    42,
		Email: "usta@example.com",
		Name:  "Hüseyin Usta",
		Role:  "owner",
	}

	signed, err := svc.Issue(payload)
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	got, err := svc.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, payload, *got)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	svc, err := New(testSecret, time.Millisecond)
	require.NoError(t, err)

	signed, err := svc.Issue(Payload{ID: 1, Role: "customer"})
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	got, err := svc.Verify(signed)
	assert.Error(t, err)
	assert.Nil(t, got)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	issuer, err := New(testSecret, DefaultTTL)
	require.NoError(t, err)
	verifier, err := New("another-secret-that-is-also-long-enough", DefaultTTL)
	require.NoError(t, err)

	signed, err := issuer.Issue(Payload{ID: 1, Role: "customer"})
	require.NoError(t, err)

	got, err := verifier.Verify(signed)
	assert.Error(t, err)
	assert.Nil(t, got)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	svc, err := New(testSecret, DefaultTTL)
	require.NoError(t, err)

	for _, input := range []string{"", "not-a-token", "a.b.c"} {
		got, err := svc.Verify(input)
		assert.Error(t, err, "input %q", input)
		assert.Nil(t, got)
	}
}
