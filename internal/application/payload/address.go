package payload

import (
	"github.com/khehtisham/magento2-textyess-integration/internal/domain/textyess"
)

// CountryResolver resolves an ISO 3166-1 alpha-2 country code to a display
// name. Implementations report ok=false when the code is unknown.
type CountryResolver interface {
	CountryName(code string) (name string, ok bool)
}

// MapAddress normalizes a platform address snapshot into the external
// address shape. Absent fields default to the empty string; the mapping
// never fails. A nil address yields a zero-valued record, which serializes
// with every key present.
func MapAddress(addr *textyess.AddressSnapshot, countries CountryResolver) textyess.AddressRecord {
	if addr == nil {
		return textyess.AddressRecord{}
	}

	record := textyess.AddressRecord{
		FirstName:    addr.Firstname,
		LastName:     addr.Lastname,
		Company:      addr.Company,
		City:         addr.City,
		Province:     addr.Region,
		ProvinceCode: addr.RegionCode,
		CountryCode:  addr.CountryID,
		Zip:          addr.Postcode,
		Phone:        addr.Telephone,
	}

	if len(addr.Street) > 0 {
		record.Address1 = addr.Street[0]
	}
	if len(addr.Street) > 1 {
		record.Address2 = addr.Street[1]
	}

	// Country name lookup may fail for missing or invalid codes;
	// fall back to the raw code.
	record.Country = addr.CountryID
	if countries != nil {
		if name, ok := countries.CountryName(addr.CountryID); ok {
			record.Country = name
		}
	}

	return record
}
