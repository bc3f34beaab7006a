package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestGateway(t *testing.T, handler http.HandlerFunc) *HTTPGateway {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewHTTPGateway(srv.URL, 5*time.Second)
}

func TestLogin_CompletedShape(t *testing.T) {
	g := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/signin", r.URL.Path)
		require.Equal(t, http.MethodPost, r.Method)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "a@lau.edu", body["email"])
		require.Equal(t, "pw", body["password"])

		json.NewEncoder(w).Encode(map[string]string{
			"accessToken":  "at",
			"refreshToken": "rt",
			"id":           "42",
			"email":        "a@lau.edu",
			"major":        "CS",
		})
	})

	out, err := g.Login(context.Background(), "a@lau.edu", "pw")
	require.NoError(t, err)
	require.Nil(t, out.Pending)
	require.NotNil(t, out.Completed)
	require.Equal(t, "at", out.Completed.AccessToken)
	require.Equal(t, "42", out.Completed.UserID)
	require.Equal(t, "CS", out.Completed.Major)
}

func TestLogin_PendingVerificationShape(t *testing.T) {
	g := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		// userId comes back as a JSON number for unverified accounts.
		w.Write([]byte(`{"message":"verification required","userId":7}`))
	})

	out, err := g.Login(context.Background(), "a@lau.edu", "pw")
	require.NoError(t, err)
	require.Nil(t, out.Completed)
	require.NotNil(t, out.Pending)
	require.Equal(t, "7", out.Pending.UserID)
}

func TestLogin_UnexpectedShape(t *testing.T) {
	g := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	})
	_, err := g.Login(context.Background(), "a@lau.edu", "pw")
	require.Error(t, err)
}

func TestSignUp_SendsPushTokenWhenPresent(t *testing.T) {
	var got map[string]string
	g := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/signup", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Write([]byte(`{"message":"created","userId":7}`))
	})

	res, err := g.SignUp(context.Background(), SignUpRequest{
		Email: "a@lau.edu", Password: "pw", Major: "CS", PushToken: "push-1",
	})
	require.NoError(t, err)
	require.Equal(t, "7", res.UserID)
	require.Equal(t, "push-1", got["notificationToken"])
}

func TestSignUp_OmitsEmptyPushToken(t *testing.T) {
	var got map[string]string
	g := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Write([]byte(`{"userId":8}`))
	})

	_, err := g.SignUp(context.Background(), SignUpRequest{Email: "a@lau.edu", Password: "pw", Major: "CS"})
	require.NoError(t, err)
	_, present := got["notificationToken"]
	require.False(t, present)
}

func TestRefresh(t *testing.T) {
	g := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/refreshToken", r.URL.Path)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "rt", body["refreshToken"])
		w.Write([]byte(`{"accessToken":"new-at"}`))
	})

	res, err := g.Refresh(context.Background(), "rt")
	require.NoError(t, err)
	require.Equal(t, "new-at", res.AccessToken)
}

func TestRefresh_ExpiredTokenIsUnauthorized(t *testing.T) {
	g := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"refresh token expired"}`))
	})

	_, err := g.Refresh(context.Background(), "rt")
	require.ErrorIs(t, err, ErrUnauthorized)
	require.Contains(t, err.Error(), "refresh token expired")
}

func TestVerify(t *testing.T) {
	g := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/verify", r.URL.Path)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "123456", body["code"])
		require.Equal(t, "7", body["userId"])
		json.NewEncoder(w).Encode(map[string]string{
			"accessToken":  "at",
			"refreshToken": "rt",
			"id":           "7",
			"email":        "a@lau.edu",
		})
	})

	res, err := g.Verify(context.Background(), "123456", "7")
	require.NoError(t, err)
	require.Equal(t, "7", res.UserID)
	require.Equal(t, "at", res.AccessToken)
}

func TestVerify_BadCodePropagatesAPIError(t *testing.T) {
	g := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"invalid code"}`))
	})

	_, err := g.Verify(context.Background(), "000000", "7")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	require.Equal(t, "invalid code", apiErr.Message)
}

func TestSignOut_SendsBearer(t *testing.T) {
	g := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/signout", r.URL.Path)
		require.Equal(t, "Bearer at", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, g.SignOut(context.Background(), "at"))
}

func TestServerErrorsMapToUnavailable(t *testing.T) {
	g := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	_, err := g.Login(context.Background(), "a@lau.edu", "pw")
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestTransportErrorMapsToUnavailable(t *testing.T) {
	g := NewHTTPGateway("http://127.0.0.1:1", 200*time.Millisecond)
	_, err := g.Refresh(context.Background(), "rt")
	require.ErrorIs(t, err, ErrUnavailable)
}
