// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package regions

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownRegion reports a code outside the closed region set.
	ErrUnknownRegion = errors.New("unknown region code")
)

// Region is one of the geographic codes used by the life expectancy dataset.
type Region string

const (
	AL Region = "AL"
	AM Region = "AM"
	AT Region = "AT"
	AZ Region = "AZ"
	BE Region = "BE"
	BG Region = "BG"
	BY Region = "BY"
	CH Region = "CH"
	CY Region = "CY"
	CZ Region = "CZ"
	DE Region = "DE"
	DK Region = "DK"
	EE Region = "EE"
	EL Region = "EL"
	ES Region = "ES"
	FI Region = "FI"
	FR Region = "FR"
	GE Region = "GE"
	HR Region = "HR"
	HU Region = "HU"
	IE Region = "IE"
	IS Region = "IS"
	IT Region = "IT"
	LI Region = "LI"
	LT Region = "LT"
	LU Region = "LU"
	LV Region = "LV"
	MD Region = "MD"
	ME Region = "ME"
	MK Region = "MK"
	MT Region = "MT"
	NL Region = "NL"
	NO Region = "NO"
	PL Region = "PL"
	PT Region = "PT"
	RO Region = "RO"
	RS Region = "RS"
	RU Region = "RU"
	SE Region = "SE"
	SI Region = "SI"
	SK Region = "SK"
	SM Region = "SM"
	TR Region = "TR"
	UA Region = "UA"
	UK Region = "UK"
	XK Region = "XK"

	DETotal   Region = "DE_TOT"
	EA18      Region = "EA18"
	EA19      Region = "EA19"
	EEA302007 Region = "EEA30_2007"
	EEA31     Region = "EEA31"
	EFTA      Region = "EFTA"
	EU272007  Region = "EU27_2007"
	EU272020  Region = "EU27_2020"
	EU28      Region = "EU28"
	FX        Region = "FX"
)

// names maps every valid code to its human readable name, and doubles as the
// definition of the closed region set.
var names = map[Region]string{
	AL: "Albania",
	AM: "Armenia",
	AT: "Austria",
	AZ: "Azerbaijan",
	BE: "Belgium",
	BG: "Bulgaria",
	BY: "Belarus",
	CH: "Switzerland",
	CY: "Cyprus",
	CZ: "Czech Republic",
	DE: "Germany",
	DK: "Denmark",
	EE: "Estonia",
	EL: "Greece",
	ES: "Spain",
	FI: "Finland",
	FR: "France",
	GE: "Georgia",
	HR: "Croatia",
	HU: "Hungary",
	IE: "Ireland",
	IS: "Iceland",
	IT: "Italy",
	LI: "Liechtenstein",
	LT: "Lithuania",
	LU: "Luxembourg",
	LV: "Latvia",
	MD: "Moldova",
	ME: "Montenegro",
	MK: "North Macedonia",
	MT: "Malta",
	NL: "Netherlands",
	NO: "Norway",
	PL: "Poland",
	PT: "Portugal",
	RO: "Romania",
	RS: "Serbia",
	RU: "Russia",
	SE: "Sweden",
	SI: "Slovenia",
	SK: "Slovakia",
	SM: "San Marino",
	TR: "Turkey",
	UA: "Ukraine",
	UK: "United Kingdom",
	XK: "Kosovo",

	DETotal:   "Germany Total",
	EA18:      "Euro Area 18",
	EA19:      "Euro Area 19",
	EEA302007: "European Economic Area 30 (2007)",
	EEA31:     "European Economic Area 31",
	EFTA:      "European Free Trade Association",
	EU272007:  "European Union 27 (2007)",
	EU272020:  "European Union 27 (2020)",
	EU28:      "European Union 28",
	FX:        "France Metropolitan",
}

// aggregates holds the supranational and historical grouping codes that do
// not identify a single country.
var aggregates = map[Region]struct{}{
	DETotal:   {},
	EA18:      {},
	EA19:      {},
	EEA302007: {},
	EEA31:     {},
	EFTA:      {},
	EU272007:  {},
	EU272020:  {},
	EU28:      {},
	FX:        {},
}

// sortedCodes keeps the enumeration order stable for All and Countries.
var sortedCodes = []Region{
	AL, AM, AT, AZ, BE, BG, BY, CH, CY, CZ,
	DE, DK, EE, EL, ES, FI, FR, GE, HR, HU,
	IE, IS, IT, LI, LT, LU, LV, MD, ME, MK,
	MT, NL, NO, PL, PT, RO, RS, RU, SE, SI,
	SK, SM, TR, UA, UK, XK,
	DETotal, EA18, EA19, EEA302007, EEA31, EFTA,
	EU272007, EU272020, EU28, FX,
}

// Parse validates code against the closed region set.
func Parse(code string) (Region, error) {
	region := Region(code)
	if _, ok := names[region]; !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownRegion, code)
	}

	return region, nil
}

// All returns every valid region code, countries first, then aggregates.
func All() []Region {
	all := make([]Region, len(sortedCodes))
	copy(all, sortedCodes)
	return all
}

// Countries returns only the codes that identify a single country,
// excluding supranational and historical aggregates.
func Countries() []Region {
	countries := make([]Region, 0, len(sortedCodes)-len(aggregates))
	for _, region := range sortedCodes {
		if region.IsCountry() {
			countries = append(countries, region)
		}
	}

	return countries
}

// IsCountry reports whether the region identifies a single country.
func (r Region) IsCountry() bool {
	if _, ok := names[r]; !ok {
		return false
	}

	_, aggregate := aggregates[r]
	return !aggregate
}

// Name returns the human readable name for the region code.
func (r Region) Name() string {
	return names[r]
}

func (r Region) String() string {
	return string(r)
}
