package ports

import "aocsync/internal/domain"

// SourceRenderer turns abstract source file descriptions into formatted source text
type SourceRenderer interface {
	RenderScaffold(s domain.Scaffold) ([]byte, error)
	RenderYearAggregator(agg domain.YearAggregator) ([]byte, error)
	RenderRootAggregator(agg domain.RootAggregator) ([]byte, error)
}
