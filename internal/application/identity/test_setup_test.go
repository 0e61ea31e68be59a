package identity_test

import (
	"strings"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// fakeIssuer derives a deterministic token from the user ID.
type fakeIssuer struct{}

func (fakeIssuer) Issue(userID bson.ObjectID) (string, error) {
	return tokenFor(userID), nil
}

func tokenFor(userID bson.ObjectID) string {
	return "token-" + userID.Hex()
}

func isMockEmail(email, provider string) bool {
	return strings.HasPrefix(email, provider+"_user_") && strings.HasSuffix(email, "@artify.com")
}
