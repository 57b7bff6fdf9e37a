package gpp

import (
	"errors"
	"testing"
	"time"
)

// tcfEuV2TestVector is a hand-built core segment: created/updated
// 2023-11-14, cmp id 1, consent language "EN", purposes 1-3 consented,
// vendor consents {1,3,5}, no publisher restrictions.
const tcfEuV2TestVector = "CP1R2oAP1R2pkABABBENABCoAOAAAAAAAAYgACqgAAAA"

func TestDecodeTcfEuV2Core(t *testing.T) {
	sec, err := decodeTcfEuV2(tcfEuV2TestVector)
	if err != nil {
		t.Fatalf("decodeTcfEuV2() error = %v", err)
	}
	c := sec.Core

	wantCreated := time.Date(2023, time.November, 14, 22, 13, 20, 0, time.UTC)
	if !c.Created.Equal(wantCreated) {
		t.Errorf("Created = %v, want %v", c.Created, wantCreated)
	}
	if c.CmpID != 1 || c.CmpVersion != 1 {
		t.Errorf("CmpID/CmpVersion = %d/%d, want 1/1", c.CmpID, c.CmpVersion)
	}
	if c.ConsentLanguage != "EN" {
		t.Errorf("ConsentLanguage = %q, want %q", c.ConsentLanguage, "EN")
	}
	if c.PolicyVersion != 2 {
		t.Errorf("PolicyVersion = %d, want 2", c.PolicyVersion)
	}
	if !c.IsServiceSpecific {
		t.Errorf("IsServiceSpecific = false, want true")
	}
	if c.UseNonStandardStacks {
		t.Errorf("UseNonStandardStacks = true, want false")
	}
	if !c.SpecialFeatureOptins.Contains(1) {
		t.Errorf("SpecialFeatureOptins.Contains(1) = false, want true")
	}
	for _, id := range []uint16{1, 2, 3} {
		if !c.PurposeConsents.Contains(id) {
			t.Errorf("PurposeConsents.Contains(%d) = false, want true", id)
		}
	}
	if c.PurposeLegitimateInterests.Len() != 0 {
		t.Errorf("PurposeLegitimateInterests.Len() = %d, want 0", c.PurposeLegitimateInterests.Len())
	}
	if c.PublisherCountryCode != "DE" {
		t.Errorf("PublisherCountryCode = %q, want %q", c.PublisherCountryCode, "DE")
	}
	want := []uint16{1, 3, 5}
	got := c.VendorConsents.Ids()
	if len(got) != len(want) {
		t.Fatalf("VendorConsents.Ids() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("VendorConsents.Ids() = %v, want %v", got, want)
		}
	}
	if c.VendorLegitimateInterests.Len() != 0 {
		t.Errorf("VendorLegitimateInterests.Len() = %d, want 0", c.VendorLegitimateInterests.Len())
	}
	if len(c.PublisherRestrictions) != 0 {
		t.Errorf("PublisherRestrictions = %v, want empty", c.PublisherRestrictions)
	}
	if sec.DisclosedVendors != nil || sec.AllowedVendors != nil || sec.PublisherPurposes != nil {
		t.Errorf("optional segments decoded with no segments present: %+v", sec)
	}
}

func TestDecodeTcfEuV2UnsupportedVersion(t *testing.T) {
	// Replacing the leading version field (2) with 1 in the same vector's
	// first byte: "CP1R..." -> force-feed a v1-tagged copy.
	body := "BP1R2oAP1R2pkABABBENABCoAOAAAAAAAAYgACqgAAAA"
	_, err := decodeTcfEuV2(body)
	var decodeErr *SectionDecodeError
	if !errors.As(err, &decodeErr) || decodeErr.Kind != UnknownSegmentVersion {
		t.Errorf("decodeTcfEuV2() error = %v, want UnknownSegmentVersion", err)
	}
}

func TestDecodeTcfEuV2UnknownSegmentType(t *testing.T) {
	// 3-bit tag width; "8A" decodes to a tag value not in {1,2,3}.
	_, err := decodeTcfEuV2(tcfEuV2TestVector + ".8A")
	var decodeErr *SectionDecodeError
	if !errors.As(err, &decodeErr) || decodeErr.Kind != UnknownSegmentType {
		t.Errorf("decodeTcfEuV2() error = %v, want UnknownSegmentType", err)
	}
}
