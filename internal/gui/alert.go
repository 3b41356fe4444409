package gui

import (
	"Attirra/internal/logger"

	"github.com/sqweek/dialog"
	"go.uber.org/zap"
)

// DialogAlerter shows alerts as native message boxes. The call blocks until
// the user dismisses the box.
type DialogAlerter struct{}

func (DialogAlerter) Alert(title, message string) {
	logger.Log.Info("Alert", zap.String("title", title))
	dialog.Message("%s", message).Title(title).Error()
}
