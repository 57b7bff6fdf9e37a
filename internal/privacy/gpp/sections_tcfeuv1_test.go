package gpp

import (
	"testing"
	"time"
)

// tcfEuV1TestVector is the IAB's own published example TCF EU v1 core
// segment: created/updated 2017-11-07, cmp id 7, consent language "EN",
// vendor list version 8, purposes 1-3 allowed, and vendor consent
// expressed as a default-consent range with vendor 9 excepted.
const tcfEuV1TestVector = "BOEFEAyOEFEAyAHABDENAI4AAAB9vABAASA"

func TestDecodeTcfEuV1(t *testing.T) {
	sec, err := decodeTcfEuV1(tcfEuV1TestVector)
	if err != nil {
		t.Fatalf("decodeTcfEuV1() error = %v", err)
	}

	want := time.Date(2017, time.November, 7, 19, 15, 55, 0, time.UTC)
	if !sec.Created.Equal(want) {
		t.Errorf("Created = %v, want %v", sec.Created, want)
	}
	if !sec.LastUpdated.Equal(want) {
		t.Errorf("LastUpdated = %v, want %v", sec.LastUpdated, want)
	}
	if sec.CmpID != 7 {
		t.Errorf("CmpID = %d, want 7", sec.CmpID)
	}
	if sec.CmpVersion != 1 {
		t.Errorf("CmpVersion = %d, want 1", sec.CmpVersion)
	}
	if sec.ConsentScreen != 3 {
		t.Errorf("ConsentScreen = %d, want 3", sec.ConsentScreen)
	}
	if sec.ConsentLanguage != "EN" {
		t.Errorf("ConsentLanguage = %q, want %q", sec.ConsentLanguage, "EN")
	}
	if sec.VendorListVersion != 8 {
		t.Errorf("VendorListVersion = %d, want 8", sec.VendorListVersion)
	}
	for _, id := range []uint16{1, 2, 3} {
		if !sec.PurposesAllowed.Contains(id) {
			t.Errorf("PurposesAllowed.Contains(%d) = false, want true", id)
		}
	}
	if sec.PurposesAllowed.Contains(4) {
		t.Errorf("PurposesAllowed.Contains(4) = true, want false")
	}

	// Default consent true over a 2011-vendor range, with vendor 9 as the
	// lone exception.
	if sec.VendorConsents.Len() != 2010 {
		t.Errorf("VendorConsents.Len() = %d, want 2010", sec.VendorConsents.Len())
	}
	if sec.VendorConsents.Contains(9) {
		t.Errorf("VendorConsents.Contains(9) = true, want false (exception)")
	}
	if !sec.VendorConsents.Contains(1) || !sec.VendorConsents.Contains(2011) {
		t.Errorf("VendorConsents missing boundary vendor ids 1 or 2011")
	}
}
