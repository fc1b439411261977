package granularity

import (
	"go.uber.org/zap"

	"github.com/flywave/go-granularity-convert/citymodel"
)

// Convert is the sole entry point: it re-organizes src at the
// requested granularity and returns a new, independent Model. src is
// walked but never mutated.
//
// Converting first normalizes src to atomic granularity — splitting
// every mesh along its vertex tags and emitting a primary-then-atomic
// substructure, with empty nodes pruned — which collapses the O(N^2)
// combinations of (input granularity, output granularity) down to O(N):
// every output is then derived from the same atomic form.
func Convert(src *citymodel.Model, opt Option) (*citymodel.Model, error) {
	return ConvertWithLogger(src, opt, zap.NewNop())
}

// ConvertWithLogger is Convert with an explicit logger, used by the CLI
// and tests that want to observe phase transitions without wiring a
// global logger.
func ConvertWithLogger(src *citymodel.Model, opt Option, logger *zap.Logger) (*citymodel.Model, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	logger.Debug("converting to atomic granularity", zap.Int("root_count", src.RootCount()))
	atomic := convertToAtomic(src)
	atomic.EraseEmptyNodes()

	switch opt.Granularity {
	case PerAtomicFeatureObject:
		logger.Info("convert complete", zap.String("granularity", "atomic"))
		return atomic, nil
	case PerPrimaryFeatureObject:
		dst := convertFromAtomicToPrimary(atomic)
		logger.Info("convert complete", zap.String("granularity", "primary"))
		return dst, nil
	case PerCityModelArea:
		dst := convertFromAtomicToArea(atomic)
		logger.Info("convert complete", zap.String("granularity", "area"))
		return dst, nil
	default:
		logger.Warn("unknown granularity requested", zap.Int("granularity", int(opt.Granularity)))
		return nil, ErrInvalidGranularity
	}
}
