package controller_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/HasiburRahmanDev/issue-reporting-system-server/model"
)

func TestRegisterUser(t *testing.T) {
	app, db := newTestApp(t, &fakeCheckout{})

	resp, body := doJSON(t, app, "POST", "/users", map[string]interface{}{
		"email": "jane@example.com",
		"name":  "Jane Doe",
		"role":  "admin", // clients do not choose their role
	}, "")

	assert.Equal(t, 201, resp.StatusCode)
	assert.Equal(t, "user", body["role"])

	var stored model.User
	db.Where("email = ?", "jane@example.com").First(&stored)
	assert.Equal(t, "user", stored.Role)
}

func TestRegisterExistingUserIsNoOp(t *testing.T) {
	app, db := newTestApp(t, &fakeCheckout{})

	doJSON(t, app, "POST", "/users", map[string]interface{}{
		"email": "jane@example.com", "name": "Jane Doe",
	}, "")
	resp, body := doJSON(t, app, "POST", "/users", map[string]interface{}{
		"email": "jane@example.com", "name": "Jane D.",
	}, "")

	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "user exist", body["message"])

	var count int64
	db.Model(&model.User{}).Where("email = ?", "jane@example.com").Count(&count)
	assert.Equal(t, int64(1), count)
}
