package payload

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/khehtisham/magento2-textyess-integration/internal/domain/textyess"
)

type staticCountries map[string]string

func (s staticCountries) CountryName(code string) (string, bool) {
	name, ok := s[code]
	return name, ok
}

func TestMapAddress(t *testing.T) {
	countries := staticCountries{"IT": "Italy", "US": "United States"}

	t.Run("full address", func(t *testing.T) {
		addr := &textyess.AddressSnapshot{
			Firstname:  "Mario",
			Lastname:   "Rossi",
			Company:    "ACME Srl",
			Street:     []string{"Via Roma 1", "Interno 4"},
			City:       "Milano",
			Region:     "Lombardia",
			RegionCode: "MI",
			CountryID:  "IT",
			Postcode:   "20121",
			Telephone:  "+39 02 1234567",
		}

		got := MapAddress(addr, countries)

		assert.Equal(t, textyess.AddressRecord{
			FirstName:    "Mario",
			LastName:     "Rossi",
			Company:      "ACME Srl",
			Address1:     "Via Roma 1",
			Address2:     "Interno 4",
			City:         "Milano",
			Province:     "Lombardia",
			ProvinceCode: "MI",
			Country:      "Italy",
			CountryCode:  "IT",
			Zip:          "20121",
			Phone:        "+39 02 1234567",
		}, got)
	})

	t.Run("address missing every optional field", func(t *testing.T) {
		got := MapAddress(&textyess.AddressSnapshot{}, countries)
		assert.Equal(t, textyess.AddressRecord{}, got)
	})

	t.Run("nil address", func(t *testing.T) {
		got := MapAddress(nil, countries)
		assert.Equal(t, textyess.AddressRecord{}, got)
	})

	t.Run("single street line", func(t *testing.T) {
		got := MapAddress(&textyess.AddressSnapshot{Street: []string{"Main St 5"}}, countries)
		assert.Equal(t, "Main St 5", got.Address1)
		assert.Empty(t, got.Address2)
	})

	t.Run("unknown country falls back to raw code", func(t *testing.T) {
		got := MapAddress(&textyess.AddressSnapshot{CountryID: "XX"}, countries)
		assert.Equal(t, "XX", got.Country)
		assert.Equal(t, "XX", got.CountryCode)
	})

	t.Run("nil resolver falls back to raw code", func(t *testing.T) {
		got := MapAddress(&textyess.AddressSnapshot{CountryID: "IT"}, nil)
		assert.Equal(t, "IT", got.Country)
	})
}
