// Command example demonstrates routing a DRM authentication failure through
// the event dispatcher.
package main

import (
	"go.uber.org/zap"

	"github.com/panda-media/events"
	"github.com/panda-media/events/contract"
	"github.com/panda-media/events/drmauthenticationerrorevent"
)

func main() {
	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	dispatcher := events.NewEventDispatcher(logger)

	dispatcher.AddEventListener(drmauthenticationerrorevent.AUTHENTICATION_ERROR, func(e contract.Event) {
		failure := e.(*drmauthenticationerrorevent.DRMAuthenticationErrorEvent)

		fields := []zap.Field{
			zap.String("text", failure.Text()),
			zap.Int("errorID", failure.ErrorID()),
			zap.Int("subErrorID", failure.SubErrorID()),
		}
		if url := failure.ServerURL(); url != nil {
			fields = append(fields, zap.String("serverURL", *url))
		}
		if domain := failure.Domain(); domain != nil {
			fields = append(fields, zap.String("domain", *domain))
		}

		logger.Warn("rights server rejected authentication", fields...)
	}, 0)

	// What the DRM subsystem would dispatch at the point of detection.
	dispatcher.DispatchEvent(drmauthenticationerrorevent.New(
		drmauthenticationerrorevent.AUTHENTICATION_ERROR,
		drmauthenticationerrorevent.WithText("bad cert"),
		drmauthenticationerrorevent.WithErrorID(3001),
		drmauthenticationerrorevent.WithSubErrorID(42),
		drmauthenticationerrorevent.WithServerURL("https://drm.example.com/auth"),
		drmauthenticationerrorevent.WithDomain("example.com"),
	))
}
