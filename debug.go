package iconic

import "go.uber.org/zap"

// debugMaxElementCount is the scene size above which debug mode warns.
const debugMaxElementCount = 1000

// debugCheckElementCount warns if a scene holds more than debugMaxElementCount elements.
func debugCheckElementCount(s *Scene) {
	if len(s.elements) > debugMaxElementCount {
		logger.Warn("scene element count exceeds threshold",
			zap.Int("count", len(s.elements)),
			zap.Int("threshold", debugMaxElementCount))
	}
}
