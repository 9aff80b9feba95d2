package scan

import (
	"github.com/researchaccelerator-hub/channel-scout/model"
	"github.com/rs/zerolog/log"
)

// ProgressSink receives synchronous progress callbacks at defined checkpoints
// of a scan: page start and per-channel filter decisions. Implementations must
// return quickly; a slow sink stalls the pipeline.
type ProgressSink interface {
	// PageStarted is called before each search page is requested.
	PageStarted(page int, hits int)

	// ChannelRejected is called when a channel fails a filter. index is
	// 1-based within total.
	ChannelRejected(index, total int, reason model.FilterReason)

	// ChannelAccepted is called when a channel survives both filters.
	ChannelAccepted(index, total int, title string)
}

// LogSink reports progress through the global logger.
type LogSink struct{}

func (LogSink) PageStarted(page int, hits int) {
	log.Info().Int("page", page).Int("hits", hits).Msg("Searching next page")
}

func (LogSink) ChannelRejected(index, total int, reason model.FilterReason) {
	log.Debug().Int("index", index).Int("total", total).Str("reason", string(reason)).Msg("Channel filtered out")
}

func (LogSink) ChannelAccepted(index, total int, title string) {
	log.Debug().Int("index", index).Int("total", total).Str("title", title).Msg("Channel accepted")
}

// NopSink discards all progress events.
type NopSink struct{}

func (NopSink) PageStarted(int, int)                         {}
func (NopSink) ChannelRejected(int, int, model.FilterReason) {}
func (NopSink) ChannelAccepted(int, int, string)             {}

// FuncSink adapts plain functions to the ProgressSink interface. Nil fields
// are skipped.
type FuncSink struct {
	OnPageStarted     func(page int, hits int)
	OnChannelRejected func(index, total int, reason model.FilterReason)
	OnChannelAccepted func(index, total int, title string)
}

func (s FuncSink) PageStarted(page int, hits int) {
	if s.OnPageStarted != nil {
		s.OnPageStarted(page, hits)
	}
}

func (s FuncSink) ChannelRejected(index, total int, reason model.FilterReason) {
	if s.OnChannelRejected != nil {
		s.OnChannelRejected(index, total, reason)
	}
}

func (s FuncSink) ChannelAccepted(index, total int, title string) {
	if s.OnChannelAccepted != nil {
		s.OnChannelAccepted(index, total, title)
	}
}
