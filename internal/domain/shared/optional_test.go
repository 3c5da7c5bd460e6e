package shared

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type patch struct {
	Name  Optional[string] `json:"name"`
	Phone Optional[string] `json:"phone"`
	Count Optional[int]    `json:"count"`
}

func TestOptional_Unmarshal(t *testing.T) {
	var p patch
	require.NoError(t, json.Unmarshal([]byte(`{"name":"Ada","phone":null}`), &p))

	assert.True(t, p.Name.Set)
	assert.True(t, p.Name.HasValue())
	assert.Equal(t, "Ada", p.Name.Value)

	assert.True(t, p.Phone.Set)
	assert.True(t, p.Phone.Null)
	assert.False(t, p.Phone.HasValue())

	assert.False(t, p.Count.Set, "omitted key must stay unset")
}

func TestOptional_Apply(t *testing.T) {
	t.Run("omitted leaves destination alone", func(t *testing.T) {
		dst := "keep"
		require.NoError(t, Optional[string]{}.Apply(&dst, "name"))
		assert.Equal(t, "keep", dst)
	})

	t.Run("value replaces destination", func(t *testing.T) {
		dst := "old"
		require.NoError(t, Some("new").Apply(&dst, "name"))
		assert.Equal(t, "new", dst)
	})

	t.Run("null is rejected for non-nullable destination", func(t *testing.T) {
		dst := "old"
		err := Null[string]().Apply(&dst, "name")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidInput)
		assert.Equal(t, "old", dst)
	})
}

func TestOptional_ApplyFunc(t *testing.T) {
	var got []string
	set := func(v string) error {
		if v == "" {
			return InvalidInput("empty")
		}
		got = append(got, v)
		return nil
	}

	require.NoError(t, Optional[string]{}.ApplyFunc("name", set))
	require.NoError(t, Some("x").ApplyFunc("name", set))
	assert.ErrorIs(t, Some("").ApplyFunc("name", set), ErrInvalidInput)
	assert.ErrorIs(t, Null[string]().ApplyFunc("name", set), ErrInvalidInput)
	assert.Equal(t, []string{"x"}, got)
}

func TestOptional_ApplyNullable(t *testing.T) {
	initial := 5
	dst := &initial

	Optional[int]{}.ApplyNullable(&dst)
	require.NotNil(t, dst)
	assert.Equal(t, 5, *dst)

	Some(7).ApplyNullable(&dst)
	require.NotNil(t, dst)
	assert.Equal(t, 7, *dst)

	Null[int]().ApplyNullable(&dst)
	assert.Nil(t, dst)
}

func TestDomainError_Is(t *testing.T) {
	assert.ErrorIs(t, NotFound("Claim"), ErrNotFound)
	assert.NotErrorIs(t, NotFound("Claim"), ErrAlreadyExists)
	assert.Equal(t, "Claim not found", NotFound("Claim").Error())
}

func TestOptional_ApplyOrZero(t *testing.T) {
	dst := "555-0100"
	Optional[string]{}.ApplyOrZero(&dst)
	assert.Equal(t, "555-0100", dst)

	Some("555-0199").ApplyOrZero(&dst)
	assert.Equal(t, "555-0199", dst)

	Null[string]().ApplyOrZero(&dst)
	assert.Empty(t, dst)
}
