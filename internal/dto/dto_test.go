package dto

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/poseidon-markets/refdata-service/internal/models"
)

func TestUserFromModel_NeverCarriesCredentials(t *testing.T) {
	user := models.User{
		ID:           3,
		Username:     "alice",
		PasswordHash: "$2a$10$somethingsecret",
		FullName:     "Alice Smith",
		Role:         models.RoleAdmin,
	}

	d := UserFromModel(user)

	if d.Password != "" {
		t.Error("UserFromModel() must leave the password empty")
	}

	encoded, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(encoded), "secret") {
		t.Error("serialized user must not contain the stored hash")
	}
	if strings.Contains(string(encoded), `"password"`) {
		t.Error("serialized user must omit the empty password field")
	}
}

func TestCurvePointToModel_DropsClientCreationDate(t *testing.T) {
	curveID := int16(7)
	d := CurvePointDTO{
		ID:           3,
		CurveID:      &curveID,
		CreationDate: time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC),
	}

	m := d.ToModel()

	if !m.CreationDate.IsZero() {
		t.Error("ToModel() must not carry the client-supplied creation date")
	}
	if m.CurveID == nil || *m.CurveID != 7 {
		t.Error("ToModel() should carry the curve id")
	}
}

func TestBidListRoundTrip(t *testing.T) {
	qty := 12.5
	when := time.Date(2026, time.February, 2, 10, 0, 0, 0, time.UTC)
	d := BidListDTO{
		BidListID:    8,
		Account:      "ACC-1",
		BidType:      "firm",
		BidQuantity:  &qty,
		Benchmark:    "EURIBOR",
		BidListDate:  &when,
		Commentary:   "quarterly refresh",
		BidSecurity:  "FR0012345678",
		BidStatus:    "open",
		Trader:       "jdoe",
		Book:         "rates-emea",
		CreationName: "jdoe",
		RevisionName: "jdoe",
		DealName:     "deal-8",
		DealType:     "swap",
		SourceListID: "src-8",
		Side:         "buy",
	}

	got := BidListFromModel(d.ToModel())

	if got != d {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, d)
	}
}
