package store

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/stretchr/testify/require"
)

// Runs against the Firestore emulator only; FIRESTORE_EMULATOR_HOST must be set.
func TestFirestoreStore_Contract(t *testing.T) {
	if os.Getenv("FIRESTORE_EMULATOR_HOST") == "" {
		t.Skip("FIRESTORE_EMULATOR_HOST not set")
	}

	ctx := context.Background()
	client, err := firestore.NewClient(ctx, "portfolio-test")
	require.NoError(t, err)

	s := NewFirestoreStore(client)
	defer s.Close()

	collection := fmt.Sprintf("contract-%d", time.Now().UnixNano())
	runStoreContract(t, s, collection)
}
