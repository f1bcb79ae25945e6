package store

import (
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestParseObjectIDInvalid(t *testing.T) {
	for _, id := range []string{"", "abc", "zzzzzzzzzzzzzzzzzzzzzzzz", "123"} {
		_, err := parseObjectID(id)
		if !errors.Is(err, ErrInvalidID) {
			t.Fatalf("id %q : attendu ErrInvalidID, obtenu %v", id, err)
		}
	}
}

func TestParseObjectIDWellFormed(t *testing.T) {
	hex := primitive.NewObjectID().Hex()
	oid, err := parseObjectID(hex)
	if err != nil {
		t.Fatalf("id bien formé rejeté: %v", err)
	}
	if oid.Hex() != hex {
		t.Fatalf("ObjectID altéré: %s != %s", oid.Hex(), hex)
	}
}
