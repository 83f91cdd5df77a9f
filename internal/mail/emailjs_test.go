package mail

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Send_Success(t *testing.T) {
	var got sendRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)

	c := NewClient(srv.URL, "service_test", "pk_test", 5*time.Second, nil)
	res := c.Send(context.Background(), "template_verify",
		VerificationParams("to@uni.edu", "Aarav", "123456", "Greenwood"))

	require.True(t, res.OK)
	assert.Empty(t, res.Err)
	assert.Equal(t, "service_test", got.ServiceID)
	assert.Equal(t, "template_verify", got.TemplateID)
	assert.Equal(t, "pk_test", got.UserID)
	assert.Equal(t, "123456", got.TemplateParams["verification_code"])
	assert.Equal(t, "to@uni.edu", got.TemplateParams["to_email"])
}

func TestClient_Send_RejectionSurfacesBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte("The template ID is invalid"))
	}))
	t.Cleanup(srv.Close)

	c := NewClient(srv.URL, "svc", "pk", 5*time.Second, nil)
	res := c.Send(context.Background(), "template_bogus", map[string]any{})

	require.False(t, res.OK)
	assert.Equal(t, "The template ID is invalid", res.Err)
}

func TestClient_Send_TransportError(t *testing.T) {
	c := NewClient("http://127.0.0.1:1", "svc", "pk", time.Second, nil)
	res := c.Send(context.Background(), "template_verify", map[string]any{})

	require.False(t, res.OK)
	assert.NotEmpty(t, res.Err)
}

func TestClient_Send_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
	}))
	t.Cleanup(srv.Close)

	c := NewClient(srv.URL, "svc", "pk", 50*time.Millisecond, nil)
	res := c.Send(context.Background(), "template_verify", map[string]any{})

	require.False(t, res.OK)
	assert.Equal(t, "mail request timed out", res.Err)
}

func TestAlertParams_PayloadKeys(t *testing.T) {
	p := AlertParams("s@uni.edu", "Karan Mehta", "BA-401", 65, "Greenwood", 75)

	assert.Equal(t, "s@uni.edu", p["to_email"])
	assert.Equal(t, "Karan Mehta", p["student_name"])
	assert.Equal(t, "BA-401", p["course_name"])
	assert.Equal(t, 65, p["attendance_percentage"])
	assert.Equal(t, 75, p["threshold"])
}
