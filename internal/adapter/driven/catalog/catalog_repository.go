// Package catalog serves the built-in carrier catalog and the coverage lookup.
package catalog

import (
	"context"

	"github.com/diillson/billswitch/internal/domain/entity"
	"github.com/diillson/billswitch/internal/domain/repository"
)

// CarrierRepositoryImpl implementa o CarrierRepository com dados estáticos.
type CarrierRepositoryImpl struct {
	offers   []entity.CarrierOffer
	profiles []entity.CarrierProfile
	current  entity.CurrentPlan
}

// NewCarrierRepository cria o catálogo embutido.
func NewCarrierRepository() repository.CarrierRepository {
	return &CarrierRepositoryImpl{
		offers:   alternativeCarriers,
		profiles: carrierProfiles,
		current:  entity.CurrentPlan{Name: "Big Mobile Inc.", MonthlyPrice: 89.99, Lines: 1},
	}
}

// Alternatives retorna uma cópia das operadoras alternativas.
func (r *CarrierRepositoryImpl) Alternatives(ctx context.Context) ([]entity.CarrierOffer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]entity.CarrierOffer, len(r.offers))
	for i, o := range r.offers {
		o.Features = append([]string(nil), o.Features...)
		out[i] = o
	}
	return out, nil
}

// Profiles retorna os perfis detalhados das grandes operadoras.
func (r *CarrierRepositoryImpl) Profiles(ctx context.Context) ([]entity.CarrierProfile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return append([]entity.CarrierProfile(nil), r.profiles...), nil
}

// DefaultCurrentPlan is used when no bill has been analysed.
func (r *CarrierRepositoryImpl) DefaultCurrentPlan() entity.CurrentPlan {
	return r.current
}

var alternativeCarriers = []entity.CarrierOffer{
	{
		ID:           "tmobile",
		Name:         "T-Mobile",
		Logo:         "T",
		MonthlyPrice: 65,
		Data:         "Unlimited",
		Coverage:     94,
		Features:     []string{"5G access", "Mobile hotspot", "International texting", "Netflix subscription"},
	},
	{
		ID:           "verizon",
		Name:         "Verizon",
		Logo:         "V",
		MonthlyPrice: 70,
		Data:         "Unlimited",
		Coverage:     96,
		Features:     []string{"5G access", "Mobile hotspot", "International roaming", "Disney+ subscription"},
	},
	{
		ID:           "att",
		Name:         "AT&T",
		Logo:         "A",
		MonthlyPrice: 75,
		Data:         "Unlimited",
		Coverage:     95,
		Features:     []string{"5G access", "Mobile hotspot", "International texting", "HBO Max subscription"},
	},
	{
		ID:           "visible",
		Name:         "Visible",
		Logo:         "Vi",
		MonthlyPrice: 40,
		Data:         "Unlimited",
		Coverage:     92,
		Features:     []string{"5G access", "Mobile hotspot", "Unlimited talk & text"},
	},
	{
		ID:           "mint",
		Name:         "Mint Mobile",
		Logo:         "M",
		MonthlyPrice: 30,
		Data:         "10GB",
		Coverage:     88,
		Features:     []string{"5G access", "Mobile hotspot", "Free calls to Mexico & Canada"},
	},
}

var carrierProfiles = []entity.CarrierProfile{
	{
		ID:          "verizon",
		Name:        "Verizon",
		Logo:        "V",
		Description: "Verizon offers extensive coverage across the US with robust 5G infrastructure and reliable service.",
		Pros:        []string{"Excellent nationwide coverage", "Strong rural coverage", "Reliable 5G network", "Good customer service"},
		Cons:        []string{"Higher priced plans", "Deprioritization on some plans", "International options cost extra"},
		Plans: []entity.CarrierPlan{
			{Name: "Start Unlimited", Price: 70, Data: "Unlimited", Features: []string{
				"5G Nationwide access", "DVD-quality streaming", "6 months of Disney+, Apple Music, and discovery+",
			}},
			{Name: "Play More Unlimited", Price: 80, Data: "Unlimited", Features: []string{
				"5G Ultra Wideband access", "HD streaming", "Disney+, Hulu, and ESPN+ included", "25GB premium mobile hotspot data",
			}},
			{Name: "Get More Unlimited", Price: 90, Data: "Unlimited", Features: []string{
				"5G Ultra Wideband access", "HD streaming", "Disney+, Hulu, and ESPN+ included", "50GB premium mobile hotspot data", "600GB cloud storage",
			}},
		},
		Coverage: entity.CoverageScores{Overall: 96, Data: 95, Voice: 97, Map: "/coverage-maps/verizon.png"},
	},
	{
		ID:          "att",
		Name:        "AT&T",
		Logo:        "A",
		Description: "AT&T provides solid nationwide coverage with competitive plans and entertainment bundle options.",
		Pros:        []string{"Good nationwide coverage", "HBO Max included with some plans", "Strong urban performance", "International options"},
		Cons:        []string{"Coverage gaps in some rural areas", "Complex plan structure", "Inconsistent 5G availability"},
		Plans: []entity.CarrierPlan{
			{Name: "Unlimited Starter", Price: 65, Data: "Unlimited", Features: []string{
				"5G access", "Standard definition streaming", "Unlimited talk, text, and data in Mexico and Canada",
			}},
			{Name: "Unlimited Extra", Price: 75, Data: "Unlimited", Features: []string{
				"5G access", "50GB premium data", "15GB hotspot data per line", "Unlimited talk, text, and data in Mexico and Canada",
			}},
			{Name: "Unlimited Elite", Price: 85, Data: "Unlimited", Features: []string{
				"5G access", "Unlimited premium data", "HBO Max included", "40GB hotspot data per line", "HD streaming",
			}},
		},
		Coverage: entity.CoverageScores{Overall: 93, Data: 92, Voice: 95, Map: "/coverage-maps/att.png"},
	},
	{
		ID:          "tmobile",
		Name:        "T-Mobile",
		Logo:        "T",
		Description: "T-Mobile offers affordable plans with extensive 5G coverage and excellent urban performance.",
		Pros:        []string{"Extensive 5G coverage", "Competitive pricing", "Netflix included with some plans", "Excellent international options"},
		Cons:        []string{"Coverage gaps in rural areas", "Indoor penetration issues", "Deprioritization during congestion"},
		Plans: []entity.CarrierPlan{
			{Name: "Essentials", Price: 60, Data: "Unlimited", Features: []string{
				"5G access", "Standard definition streaming", "Unlimited talk, text, and data in Mexico and Canada", "50GB premium data",
			}},
			{Name: "Magenta", Price: 70, Data: "Unlimited", Features: []string{
				"5G access", "100GB premium data", "5GB high-speed mobile hotspot data", "Netflix Basic with 2+ lines", "Unlimited talk, text, and data in Mexico and Canada",
			}},
			{Name: "Magenta MAX", Price: 85, Data: "Unlimited", Features: []string{
				"5G access", "Truly unlimited premium data", "40GB high-speed mobile hotspot data", "Netflix Standard with 2+ lines", "4K UHD streaming", "Unlimited talk, text, and data in Mexico and Canada",
			}},
		},
		Coverage: entity.CoverageScores{Overall: 91, Data: 94, Voice: 89, Map: "/coverage-maps/tmobile.png"},
	},
}
