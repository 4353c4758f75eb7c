package seed

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"qrap/internal/report"
	"qrap/internal/store"
	"qrap/pkg/types"
)

// Sample submissions for local development, alternating between the two
// report kinds.

var fakeDescriptions = []string{
	"Oil spill near press line 2, floor taped off.",
	"Guard rail bolt missing on mezzanine stairs.",
	"Forklift horn intermittent in cold storage.",
	"Coolant leak under CNC mill, absorbent applied.",
	"Emergency stop cover cracked on packaging line.",
	"Pallet stack above height limit in aisle D.",
	"Conveyor belt fraying at station 4 transfer.",
	"Hydraulic hose weeping on stamping press.",
}

var fakeLocations = []string{
	"atelier A", "atelier B", "quai de chargement", "zone peinture", "magasin",
}

func Reports(ctx context.Context, repo *store.ReportRepository, count int) ([]*types.Report, error) {
	out := make([]*types.Report, 0, count)

	for i := 0; i < count; i++ {
		kind := report.KindSafety
		if i%2 == 1 {
			kind = report.KindBreakdown
		}

		form := report.Form{
			Numero:      fmt.Sprintf("%d", 1000+i),
			Description: fakeDescriptions[i%len(fakeDescriptions)],
			Date:        time.Now().AddDate(0, 0, -rand.Intn(6)).Format("2006-01-02"),
			Time:        fmt.Sprintf("%02d:%02d", 6+rand.Intn(12), rand.Intn(60)),
			Name:        "seed",
			Location:    fakeLocations[i%len(fakeLocations)],
		}
		if kind.HasSecurisation() {
			form.Securisation = "zone balisée"
		}

		stored, err := repo.Insert(ctx, kind, report.Assemble(kind, form, nil, "", time.Now()))
		if err != nil {
			return nil, err
		}
		out = append(out, stored)
	}

	return out, nil
}
