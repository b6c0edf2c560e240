package manager

import (
	"time"

	"gridsnake/game/entity"
	"gridsnake/game/system"
)

// CleanupManager flushes the deferred destruction queue at frame end.
type CleanupManager struct {
	reg *entity.Registry
}

func NewCleanupManager(reg *entity.Registry) *CleanupManager {
	return &CleanupManager{reg: reg}
}

func (cm *CleanupManager) Phase() system.Phase { return system.PhaseCleanup }

func (cm *CleanupManager) Update(_ time.Duration) {
	cm.reg.Flush()
}
