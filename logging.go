package angzarr

import (
	"go.uber.org/zap"

	angzarrpb "angzarr/proto/angzarr"
)

// LogEventBook emits one structured log line per page in book, tagged
// with the domain, root and correlation it carries. Generic over event
// shape since payloads here are JSON-in-Any rather than fixed proto
// messages (see DESIGN.md) — callers needing field-level detail pass
// their own zap.Field extras.
func LogEventBook(logger *zap.Logger, book *angzarrpb.EventBook, extras ...zap.Field) {
	if logger == nil || book == nil {
		return
	}
	cover := book.GetCover()
	for _, page := range book.GetPages() {
		event := page.GetEvent()
		if event == nil {
			continue
		}
		fields := append([]zap.Field{
			zap.String("domain", cover.GetDomain()),
			zap.String("root", rootHex(cover)),
			zap.String("correlation_id", cover.GetCorrelationId()),
			zap.Uint32("sequence", page.GetSequence()),
			zap.String("event_type", TypeSuffix(event.TypeUrl)),
		}, extras...)
		logger.Info("event", fields...)
	}
}

// LogCommandDispatch emits a single structured log line for a command
// dispatch outcome.
func LogCommandDispatch(logger *zap.Logger, domain string, cmd *angzarrpb.CommandBook, resp *angzarrpb.BusinessResponse, err error) {
	if logger == nil {
		return
	}
	suffix := ""
	if len(cmd.GetPages()) > 0 && cmd.Pages[0].GetCommand() != nil {
		suffix = TypeSuffix(cmd.Pages[0].GetCommand().TypeUrl)
	}
	fields := []zap.Field{
		zap.String("domain", domain),
		zap.String("root", rootHex(cmd.GetCover())),
		zap.String("command_type", suffix),
	}
	if err != nil {
		logger.Error("command dispatch failed", append(fields, zap.Error(err))...)
		return
	}
	switch {
	case resp.GetEvents() != nil:
		logger.Info("command dispatched", append(fields, zap.Int("events_emitted", len(resp.GetEvents().GetPages())))...)
	case resp.GetRevocation() != nil:
		logger.Warn("command revoked", append(fields, zap.String("reason", resp.GetRevocation().GetReason()))...)
	case resp.GetNotification() != nil:
		logger.Info("command dispatched notification", fields...)
	default:
		logger.Info("command dispatched, no result", fields...)
	}
}

func rootHex(cover *angzarrpb.Cover) string {
	root := cover.GetRoot()
	if root == nil {
		return ""
	}
	id, err := FromProtoUUID(root)
	if err != nil {
		return ""
	}
	return id.String()
}
