package api

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewUpdateUserRequestDefaults(t *testing.T) {
	req := NewUpdateUserRequest()
	require.Equal(t, "", req.FullName)
	require.Nil(t, req.Email)
	require.Nil(t, req.Phone)
	require.NotNil(t, req.RoleIDs)
	require.Empty(t, req.RoleIDs)
	require.True(t, req.IsActive)
}

func TestNewUpdateUserRequestOwnsItsSlice(t *testing.T) {
	a := NewUpdateUserRequest()
	b := NewUpdateUserRequest()
	a.RoleIDs = append(a.RoleIDs, 7)
	require.Empty(t, b.RoleIDs)
}

func TestUpdateUserRequestBindDefaults(t *testing.T) {
	t.Run("omitted fields keep defaults", func(t *testing.T) {
		req := NewUpdateUserRequest()
		require.NoError(t, json.Unmarshal([]byte(`{"fullName":"Alice Chen"}`), &req))
		require.Equal(t, "Alice Chen", req.FullName)
		require.Nil(t, req.Email)
		require.Nil(t, req.Phone)
		require.Empty(t, req.RoleIDs)
		require.True(t, req.IsActive)
	})

	t.Run("explicit false overrides isActive", func(t *testing.T) {
		req := NewUpdateUserRequest()
		require.NoError(t, json.Unmarshal([]byte(`{"fullName":"A","isActive":false}`), &req))
		require.False(t, req.IsActive)
	})

	t.Run("empty email differs from omitted", func(t *testing.T) {
		req := NewUpdateUserRequest()
		require.NoError(t, json.Unmarshal([]byte(`{"email":"","phone":""}`), &req))
		require.NotNil(t, req.Email)
		require.Equal(t, "", *req.Email)
		require.NotNil(t, req.Phone)
		require.Equal(t, "", *req.Phone)
	})
}

func TestUpdateUserRequestRoundTrip(t *testing.T) {
	email := "alice@example.com"
	phone := "+886912345678"
	req := NewUpdateUserRequest()
	req.FullName = "Alice Chen"
	req.Email = &email
	req.Phone = &phone
	req.RoleIDs = []int{1, 2, 3}
	req.IsActive = false

	require.Equal(t, "Alice Chen", req.FullName)
	require.Equal(t, email, *req.Email)
	require.Equal(t, phone, *req.Phone)
	require.Equal(t, []int{1, 2, 3}, req.RoleIDs)
	require.False(t, req.IsActive)

	body, err := json.Marshal(req)
	require.NoError(t, err)
	var back UpdateUserRequest
	require.NoError(t, json.Unmarshal(body, &back))
	require.Equal(t, req, back)
}

func TestUpdateUserRequestValueSemantics(t *testing.T) {
	// 欄位相同的兩個實例對讀取端不可區分
	email := "a@b.com"
	a := UpdateUserRequest{FullName: "A", Email: &email, RoleIDs: []int{2, 1}, IsActive: true}
	b := UpdateUserRequest{FullName: "A", Email: &email, RoleIDs: []int{2, 1}, IsActive: true}
	require.Equal(t, a.FullName, b.FullName)
	require.Equal(t, *a.Email, *b.Email)
	require.Equal(t, a.RoleIDs, b.RoleIDs)
	require.Equal(t, a.IsActive, b.IsActive)
}
