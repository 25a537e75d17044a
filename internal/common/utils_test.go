package common

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetTags(t *testing.T) {
	type shape struct {
		Username string `required:"true"`
		Email    string `attr:"_email" enumerable:"false"`
	}
	st := reflect.TypeOf(shape{})

	assert.Equal(t, map[string]string{"attr": "username", "required": "true"}, GetTags(st.Field(0)))
	assert.Equal(t, map[string]string{"attr": "_email", "enumerable": "false"}, GetTags(st.Field(1)))
}

func TestGetStructType(t *testing.T) {
	type s struct{}
	assert.Equal(t, reflect.TypeOf(s{}), GetStructType(s{}))
	assert.Equal(t, reflect.TypeOf(s{}), GetStructType(&s{}))
	assert.Nil(t, GetStructType(1))
	assert.Nil(t, GetStructType(nil))
	assert.True(t, IsStructPtr(&s{}))
	assert.False(t, IsStructPtr(s{}))
}

func TestClosestMatch(t *testing.T) {
	names := []string{"username", "email", "country"}
	assert.Equal(t, "username", ClosestMatch("user", names))
	assert.Equal(t, "email", ClosestMatch("emial", names))
	assert.Equal(t, "country", ClosestMatch("contry", names))
	assert.Equal(t, "", ClosestMatch("zzzzzzzz", names))
	assert.Equal(t, "", ClosestMatch("", names))
}
