package registry

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/formulamga/mga-backend/internal/types"
)

// DefaultMGA builds the registry for the MGA document modules:
// problem tree, stakeholders, population, objectives and alternatives.
func DefaultMGA() *Registry {
	r := New()
	r.Register(problemsModule())
	r.Register(directEffectsModule())
	r.Register(indirectEffectsModule())
	r.Register(directCausesModule())
	r.Register(indirectCausesModule())
	r.Register(populationModule())
	r.Register(affectedPopulationModule())
	r.Register(interventionPopulationModule())
	r.Register(characteristicsPopulationModule())
	r.Register(participantsGeneralModule())
	r.Register(participantsModule())
	r.Register(objectivesModule())
	r.Register(objectivesCausesModule())
	r.Register(objectivesIndicatorsModule())
	r.Register(alternativesGeneralModule())
	r.Register(alternativesModule())
	return r
}

func asAny[T any](items []*T) []any {
	out := make([]any, 0, len(items))
	for _, item := range items {
		out = append(out, item)
	}
	return out
}

func castErr(module string, rec any) error {
	return fmt.Errorf("module %s: unexpected record type %T", module, rec)
}

func problemsModule() *Module {
	return &Module{
		Name:          "problems",
		DisplayName:   "Árbol de Problemas",
		Table:         "problems",
		ProjectScoped: true,
		Children:      []string{"direct_effects", "direct_causes"},
		Fetch: func(ctx context.Context, tx *gorm.DB, projectID uint) ([]any, error) {
			var rows []*types.Problem
			err := tx.WithContext(ctx).
				Preload("DirectEffects.IndirectEffects").
				Preload("DirectCauses.IndirectCauses").
				Where("project_id = ?", projectID).
				Order("id").
				Find(&rows).Error
			if err != nil {
				return nil, err
			}
			return asAny(rows), nil
		},
		Fields: func(rec any) []Field {
			p, ok := rec.(*types.Problem)
			if !ok {
				return nil
			}
			return []Field{
				{"id", p.ID},
				{"central_problem", p.CentralProblem},
				{"current_description", p.CurrentDescription},
				{"magnitude_problem", p.MagnitudeProblem},
				{"problem_tree_json", p.ProblemTreeJSON},
				{"project_id", p.ProjectID},
				{"created_at", p.CreatedAt},
				{"updated_at", p.UpdatedAt},
			}
		},
		Relations: map[string]RelationFunc{
			"direct_effects": func(rec any) ([]any, error) {
				p, ok := rec.(*types.Problem)
				if !ok {
					return nil, castErr("problems", rec)
				}
				return asAny(p.DirectEffects), nil
			},
			"direct_causes": func(rec any) ([]any, error) {
				p, ok := rec.(*types.Problem)
				if !ok {
					return nil, castErr("problems", rec)
				}
				return asAny(p.DirectCauses), nil
			},
		},
	}
}

func directEffectsModule() *Module {
	return &Module{
		Name:        "direct_effects",
		DisplayName: "Efectos Directos",
		Table:       "direct_effects",
		Children:    []string{"indirect_effects"},
		Fields: func(rec any) []Field {
			e, ok := rec.(*types.DirectEffect)
			if !ok {
				return nil
			}
			return []Field{
				{"id", e.ID},
				{"problem_id", e.ProblemID},
				{"description", e.Description},
				{"created_at", e.CreatedAt},
				{"updated_at", e.UpdatedAt},
			}
		},
		Relations: map[string]RelationFunc{
			"indirect_effects": func(rec any) ([]any, error) {
				e, ok := rec.(*types.DirectEffect)
				if !ok {
					return nil, castErr("direct_effects", rec)
				}
				return asAny(e.IndirectEffects), nil
			},
		},
	}
}

func indirectEffectsModule() *Module {
	return &Module{
		Name:        "indirect_effects",
		DisplayName: "Efectos Indirectos",
		Table:       "indirect_effects",
		Fields: func(rec any) []Field {
			e, ok := rec.(*types.IndirectEffect)
			if !ok {
				return nil
			}
			return []Field{
				{"id", e.ID},
				{"direct_effect_id", e.DirectEffectID},
				{"description", e.Description},
				{"created_at", e.CreatedAt},
				{"updated_at", e.UpdatedAt},
			}
		},
	}
}

func directCausesModule() *Module {
	return &Module{
		Name:        "direct_causes",
		DisplayName: "Causas Directas",
		Table:       "direct_causes",
		Children:    []string{"indirect_causes"},
		Fields: func(rec any) []Field {
			c, ok := rec.(*types.DirectCause)
			if !ok {
				return nil
			}
			return []Field{
				{"id", c.ID},
				{"problem_id", c.ProblemID},
				{"description", c.Description},
				{"created_at", c.CreatedAt},
				{"updated_at", c.UpdatedAt},
			}
		},
		Relations: map[string]RelationFunc{
			"indirect_causes": func(rec any) ([]any, error) {
				c, ok := rec.(*types.DirectCause)
				if !ok {
					return nil, castErr("direct_causes", rec)
				}
				return asAny(c.IndirectCauses), nil
			},
		},
	}
}

func indirectCausesModule() *Module {
	return &Module{
		Name:        "indirect_causes",
		DisplayName: "Causas Indirectas",
		Table:       "indirect_causes",
		Fields: func(rec any) []Field {
			c, ok := rec.(*types.IndirectCause)
			if !ok {
				return nil
			}
			return []Field{
				{"id", c.ID},
				{"direct_cause_id", c.DirectCauseID},
				{"description", c.Description},
				{"created_at", c.CreatedAt},
				{"updated_at", c.UpdatedAt},
			}
		},
	}
}

func populationModule() *Module {
	return &Module{
		Name:          "population",
		DisplayName:   "Población",
		Table:         "population",
		ProjectScoped: true,
		Children:      []string{"affected_population", "intervention_population", "characteristics_population"},
		Fetch: func(ctx context.Context, tx *gorm.DB, projectID uint) ([]any, error) {
			var rows []*types.Population
			err := tx.WithContext(ctx).
				Preload("AffectedPopulation").
				Preload("InterventionPopulation").
				Preload("CharacteristicsPopulation").
				Where("project_id = ?", projectID).
				Order("id").
				Find(&rows).Error
			if err != nil {
				return nil, err
			}
			return asAny(rows), nil
		},
		Fields: func(rec any) []Field {
			p, ok := rec.(*types.Population)
			if !ok {
				return nil
			}
			return []Field{
				{"id", p.ID},
				{"affected_population_text", p.AffectedPopulationText},
				{"target_population", p.TargetPopulation},
				{"demographic_characteristics", p.DemographicCharacteristics},
				{"population_json", p.PopulationJSON},
				{"project_id", p.ProjectID},
				{"created_at", p.CreatedAt},
				{"updated_at", p.UpdatedAt},
			}
		},
		Relations: map[string]RelationFunc{
			"affected_population": func(rec any) ([]any, error) {
				p, ok := rec.(*types.Population)
				if !ok {
					return nil, castErr("population", rec)
				}
				return asAny(p.AffectedPopulation), nil
			},
			"intervention_population": func(rec any) ([]any, error) {
				p, ok := rec.(*types.Population)
				if !ok {
					return nil, castErr("population", rec)
				}
				return asAny(p.InterventionPopulation), nil
			},
			"characteristics_population": func(rec any) ([]any, error) {
				p, ok := rec.(*types.Population)
				if !ok {
					return nil, castErr("population", rec)
				}
				return asAny(p.CharacteristicsPopulation), nil
			},
		},
	}
}

func affectedPopulationModule() *Module {
	return &Module{
		Name:        "affected_population",
		DisplayName: "Población Afectada",
		Table:       "affected_population",
		Fields: func(rec any) []Field {
			a, ok := rec.(*types.AffectedPopulation)
			if !ok {
				return nil
			}
			return []Field{
				{"id", a.ID},
				{"population_id", a.PopulationID},
				{"region", a.Region},
				{"department", a.Department},
				{"city", a.City},
				{"description", a.Description},
				{"created_at", a.CreatedAt},
				{"updated_at", a.UpdatedAt},
			}
		},
	}
}

func interventionPopulationModule() *Module {
	return &Module{
		Name:        "intervention_population",
		DisplayName: "Población de Intervención",
		Table:       "intervention_population",
		Fields: func(rec any) []Field {
			i, ok := rec.(*types.InterventionPopulation)
			if !ok {
				return nil
			}
			return []Field{
				{"id", i.ID},
				{"population_id", i.PopulationID},
				{"region", i.Region},
				{"department", i.Department},
				{"city", i.City},
				{"population_center", i.PopulationCenter},
				{"location_entity", i.LocationEntity},
				{"created_at", i.CreatedAt},
				{"updated_at", i.UpdatedAt},
			}
		},
	}
}

func characteristicsPopulationModule() *Module {
	return &Module{
		Name:        "characteristics_population",
		DisplayName: "Características de Población",
		Table:       "characteristics_population",
		Fields: func(rec any) []Field {
			c, ok := rec.(*types.CharacteristicsPopulation)
			if !ok {
				return nil
			}
			return []Field{
				{"id", c.ID},
				{"population_id", c.PopulationID},
				{"classification", c.Classification},
				{"detail", c.Detail},
				{"people_number", c.PeopleNumber},
				{"information", c.Information},
				{"created_at", c.CreatedAt},
				{"updated_at", c.UpdatedAt},
			}
		},
	}
}

func participantsGeneralModule() *Module {
	return &Module{
		Name:          "participants_general",
		DisplayName:   "Actores del Proyecto",
		Table:         "participants_general",
		ProjectScoped: true,
		Children:      []string{"participants"},
		Fetch: func(ctx context.Context, tx *gorm.DB, projectID uint) ([]any, error) {
			var rows []*types.ParticipantsGeneral
			err := tx.WithContext(ctx).
				Preload("Participants").
				Where("project_id = ?", projectID).
				Order("id").
				Find(&rows).Error
			if err != nil {
				return nil, err
			}
			return asAny(rows), nil
		},
		Fields: func(rec any) []Field {
			p, ok := rec.(*types.ParticipantsGeneral)
			if !ok {
				return nil
			}
			return []Field{
				{"id", p.ID},
				{"participants_analisis", p.ParticipantsAnalisis},
				{"participants_json", p.ParticipantsJSON},
				{"project_id", p.ProjectID},
				{"created_at", p.CreatedAt},
				{"updated_at", p.UpdatedAt},
			}
		},
		Relations: map[string]RelationFunc{
			"participants": func(rec any) ([]any, error) {
				p, ok := rec.(*types.ParticipantsGeneral)
				if !ok {
					return nil, castErr("participants_general", rec)
				}
				return asAny(p.Participants), nil
			},
		},
	}
}

func participantsModule() *Module {
	return &Module{
		Name:        "participants",
		DisplayName: "Participantes",
		Table:       "participants",
		Fields: func(rec any) []Field {
			p, ok := rec.(*types.Participant)
			if !ok {
				return nil
			}
			return []Field{
				{"id", p.ID},
				{"participants_general_id", p.ParticipantsGeneralID},
				{"participant_actor", p.ParticipantActor},
				{"participant_entity", p.ParticipantEntity},
				{"interest_expectative", p.InterestExpectative},
				{"rol", p.Rol},
				{"contribution_conflicts", p.ContributionConflicts},
				{"created_at", p.CreatedAt},
				{"updated_at", p.UpdatedAt},
			}
		},
	}
}

func objectivesModule() *Module {
	return &Module{
		Name:          "objectives",
		DisplayName:   "Objetivos",
		Table:         "objectives",
		ProjectScoped: true,
		Children:      []string{"objectives_causes", "objectives_indicators"},
		Fetch: func(ctx context.Context, tx *gorm.DB, projectID uint) ([]any, error) {
			var rows []*types.Objective
			err := tx.WithContext(ctx).
				Preload("ObjectivesCauses").
				Preload("ObjectivesIndicators").
				Where("project_id = ?", projectID).
				Order("id").
				Find(&rows).Error
			if err != nil {
				return nil, err
			}
			return asAny(rows), nil
		},
		Fields: func(rec any) []Field {
			o, ok := rec.(*types.Objective)
			if !ok {
				return nil
			}
			return []Field{
				{"id", o.ID},
				{"general_objective", o.GeneralObjective},
				{"cause_relations", o.CauseRelations},
				{"project_id", o.ProjectID},
				{"created_at", o.CreatedAt},
				{"updated_at", o.UpdatedAt},
			}
		},
		Relations: map[string]RelationFunc{
			"objectives_causes": func(rec any) ([]any, error) {
				o, ok := rec.(*types.Objective)
				if !ok {
					return nil, castErr("objectives", rec)
				}
				return asAny(o.ObjectivesCauses), nil
			},
			"objectives_indicators": func(rec any) ([]any, error) {
				o, ok := rec.(*types.Objective)
				if !ok {
					return nil, castErr("objectives", rec)
				}
				return asAny(o.ObjectivesIndicators), nil
			},
		},
	}
}

func objectivesCausesModule() *Module {
	return &Module{
		Name:        "objectives_causes",
		DisplayName: "Causas del Objetivo",
		Table:       "objectives_causes",
		Fields: func(rec any) []Field {
			c, ok := rec.(*types.ObjectiveCause)
			if !ok {
				return nil
			}
			return []Field{
				{"id", c.ID},
				{"objective_id", c.ObjectiveID},
				{"type", c.Type},
				{"cause_related", c.CauseRelated},
				{"specifics_objectives", c.SpecificsObjectives},
				{"created_at", c.CreatedAt},
				{"updated_at", c.UpdatedAt},
			}
		},
	}
}

func objectivesIndicatorsModule() *Module {
	return &Module{
		Name:        "objectives_indicators",
		DisplayName: "Indicadores del Objetivo",
		Table:       "objectives_indicator",
		Fields: func(rec any) []Field {
			i, ok := rec.(*types.ObjectiveIndicator)
			if !ok {
				return nil
			}
			return []Field{
				{"id", i.ID},
				{"objective_id", i.ObjectiveID},
				{"indicator", i.Indicator},
				{"unit", i.Unit},
				{"meta", i.Meta},
				{"source_type", i.SourceType},
				{"source_validation", i.SourceValidation},
				{"created_at", i.CreatedAt},
				{"updated_at", i.UpdatedAt},
			}
		},
	}
}

func alternativesGeneralModule() *Module {
	return &Module{
		Name:          "alternatives_general",
		DisplayName:   "Alternativas de Solución",
		Table:         "alternatives_general",
		ProjectScoped: true,
		Children:      []string{"alternatives"},
		Fetch: func(ctx context.Context, tx *gorm.DB, projectID uint) ([]any, error) {
			var rows []*types.AlternativesGeneral
			err := tx.WithContext(ctx).
				Preload("Alternatives").
				Where("project_id = ?", projectID).
				Order("id").
				Find(&rows).Error
			if err != nil {
				return nil, err
			}
			return asAny(rows), nil
		},
		Fields: func(rec any) []Field {
			a, ok := rec.(*types.AlternativesGeneral)
			if !ok {
				return nil
			}
			return []Field{
				{"id", a.ID},
				{"solution_alternatives", a.SolutionAlternatives},
				{"cost", a.Cost},
				{"profitability", a.Profitability},
				{"alternatives_json", a.AlternativesJSON},
				{"project_id", a.ProjectID},
				{"created_at", a.CreatedAt},
				{"updated_at", a.UpdatedAt},
			}
		},
		Relations: map[string]RelationFunc{
			"alternatives": func(rec any) ([]any, error) {
				a, ok := rec.(*types.AlternativesGeneral)
				if !ok {
					return nil, castErr("alternatives_general", rec)
				}
				return asAny(a.Alternatives), nil
			},
		},
	}
}

func alternativesModule() *Module {
	return &Module{
		Name:        "alternatives",
		DisplayName: "Alternativas Específicas",
		Table:       "alternatives",
		Fields: func(rec any) []Field {
			a, ok := rec.(*types.Alternative)
			if !ok {
				return nil
			}
			return []Field{
				{"id", a.ID},
				{"alternatives_general_id", a.AlternativesGeneralID},
				{"description", a.Description},
				{"created_at", a.CreatedAt},
				{"updated_at", a.UpdatedAt},
			}
		},
	}
}
