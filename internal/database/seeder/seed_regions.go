package seeder

import (
	"context"

	"prop-match/internal/database"
	"prop-match/internal/domain/location"
)

// Reference region→state data. Deliberately small; operations can extend the
// table without a deploy since lookups are data-driven.
var defaultRegions = map[string]location.State{
	"Richmond":    location.Victoria,
	"Geelong":     location.Victoria,
	"Ballarat":    location.Victoria,
	"St Kilda":    location.Victoria,
	"Parramatta":  location.NewSouthWales,
	"Newcastle":   location.NewSouthWales,
	"Wollongong":  location.NewSouthWales,
	"Penrith":     location.NewSouthWales,
	"Ipswich":     location.Queensland,
	"Townsville":  location.Queensland,
	"Cairns":      location.Queensland,
	"Glenelg":     location.SouthAustralia,
	"Mount Baker": location.SouthAustralia,
	"Fremantle":   location.WesternAustralia,
	"Joondalup":   location.WesternAustralia,
	"Launceston":  location.Tasmania,
	"Hobart":      location.Tasmania,
	"Palmerston":  location.NorthernTerritory,
	"Belconnen":   location.AustralianCapitalTerritory,
}

type RegionSeeder struct{}

func (RegionSeeder) Name() string { return "regions" }

func (RegionSeeder) Run(ctx context.Context, db database.DB) error {
	for name, st := range defaultRegions {
		_, err := db.Exec(ctx,
			`INSERT INTO regions (name, state) VALUES ($1, $2)
			 ON CONFLICT (name) DO NOTHING`,
			name, st.String(),
		)
		if err != nil {
			return err
		}
	}
	return nil
}
