package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/picsure/backend/internal/domain"
	"github.com/picsure/backend/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doRequest(t *testing.T, method, url string, body interface{}, token string) *http.Response {
	t.Helper()

	req := testutil.CreateAuthenticatedRequest(t, method, url, body, token)

	client := &http.Client{}
	resp, err := client.Do(req)
	require.NoError(t, err)
	return resp
}

func TestFriendHandler_RequestLifecycle(t *testing.T) {
	ts := testutil.NewTestServer(t)

	alice, aliceToken := testutil.NewUserBuilder().BuildAndAuthenticate(t, ts)
	bob, bobToken := testutil.NewUserBuilder().BuildAndAuthenticate(t, ts)

	// Alice sends a request to Bob.
	resp := doRequest(t, "POST", ts.APIURL("/friends"),
		map[string]uint{"receiverId": bob.ID}, aliceToken)
	defer resp.Body.Close()
	testutil.AssertStatusCode(t, resp, http.StatusCreated)

	var request domain.FriendRequest
	testutil.AssertJSONResponse(t, resp, &request)
	assert.Equal(t, alice.ID, request.SenderID)
	assert.Equal(t, domain.FriendRequestPending, request.Status)

	// Sending again conflicts.
	resp = doRequest(t, "POST", ts.APIURL("/friends"),
		map[string]uint{"receiverId": bob.ID}, aliceToken)
	defer resp.Body.Close()
	testutil.AssertStatusCode(t, resp, http.StatusConflict)

	// Bob sees the pending request with the sender attached.
	resp = doRequest(t, "GET", ts.APIURL("/friends/requests"), nil, bobToken)
	defer resp.Body.Close()
	testutil.AssertStatusCode(t, resp, http.StatusOK)

	var pending []domain.FriendRequest
	testutil.AssertJSONResponse(t, resp, &pending)
	require.Len(t, pending, 1)
	require.NotNil(t, pending[0].Sender)
	assert.Equal(t, alice.Username, pending[0].Sender.Username)

	// Alice cannot accept her own outgoing request.
	acceptURL := ts.APIURL(fmt.Sprintf("/friends/requests/%d/accept", request.ID))
	resp = doRequest(t, "POST", acceptURL, nil, aliceToken)
	defer resp.Body.Close()
	testutil.AssertStatusCode(t, resp, http.StatusNotFound)

	// Bob accepts.
	resp = doRequest(t, "POST", acceptURL, nil, bobToken)
	defer resp.Body.Close()
	testutil.AssertStatusCode(t, resp, http.StatusNoContent)

	// Both friends listings show the other user.
	var friends []domain.User

	resp = doRequest(t, "GET", ts.APIURL("/friends"), nil, aliceToken)
	defer resp.Body.Close()
	testutil.AssertStatusCode(t, resp, http.StatusOK)
	testutil.AssertJSONResponse(t, resp, &friends)
	require.Len(t, friends, 1)
	assert.Equal(t, bob.ID, friends[0].ID)

	resp = doRequest(t, "GET", ts.APIURL("/friends"), nil, bobToken)
	defer resp.Body.Close()
	testutil.AssertStatusCode(t, resp, http.StatusOK)
	testutil.AssertJSONResponse(t, resp, &friends)
	require.Len(t, friends, 1)
	assert.Equal(t, alice.ID, friends[0].ID)

	// Bob removes the friendship; removing an absent edge still succeeds.
	removeURL := ts.APIURL(fmt.Sprintf("/friends/%d", alice.ID))
	resp = doRequest(t, "DELETE", removeURL, nil, bobToken)
	defer resp.Body.Close()
	testutil.AssertStatusCode(t, resp, http.StatusNoContent)

	resp = doRequest(t, "DELETE", removeURL, nil, bobToken)
	defer resp.Body.Close()
	testutil.AssertStatusCode(t, resp, http.StatusNoContent)

	resp = doRequest(t, "GET", ts.APIURL("/friends"), nil, aliceToken)
	defer resp.Body.Close()
	testutil.AssertStatusCode(t, resp, http.StatusOK)
	friends = nil
	testutil.AssertJSONResponse(t, resp, &friends)
	assert.Empty(t, friends)
}

func TestFriendHandler_SendRequest_Validation(t *testing.T) {
	ts := testutil.NewTestServer(t)

	user, token := testutil.NewUserBuilder().BuildAndAuthenticate(t, ts)

	tests := []struct {
		name           string
		request        interface{}
		expectedStatus int
	}{
		{
			name:           "missing receiver",
			request:        map[string]string{},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "self request",
			request:        map[string]uint{"receiverId": user.ID},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "unknown receiver",
			request:        map[string]uint{"receiverId": user.ID + 99999},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := doRequest(t, "POST", ts.APIURL("/friends"), tt.request, token)
			defer resp.Body.Close()

			testutil.AssertStatusCode(t, resp, tt.expectedStatus)
		})
	}
}
