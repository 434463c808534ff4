package runlog

import (
	"errors"
	"io"
	"strconv"
	"testing"

	smerrors "github.com/Station-Manager/errors"
	"github.com/Station-Manager/runlog/exception"
	"github.com/rs/zerolog"
)

// newBenchService constructs a Service writing formatted lines to io.Discard.
func newBenchService(b *testing.B, level string) *Service {
	b.Helper()
	cfg := DefaultConfig()
	cfg.Level = level
	s := &Service{WorkingDir: b.TempDir(), Config: &cfg, Output: io.Discard, now: fixedClock}
	if err := s.Initialize(); err != nil {
		b.Fatal(err)
	}
	b.Cleanup(func() { _ = s.Close() })
	return s
}

func makeDetailedChain(depth int) error {
	if depth <= 0 {
		return nil
	}
	err := smerrors.New(smerrors.Op("op_0")).Msg("root cause message")
	for i := 1; i < depth; i++ {
		op := "op_" + strconv.Itoa(i)
		err = smerrors.New(smerrors.Op(op)).Err(err).Msg("wrapped message")
	}
	return err
}

func BenchmarkInfoWith_NoFields(b *testing.B) {
	s := newBenchService(b, "INFO")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.InfoWith().Msg("hello")
	}
}

func BenchmarkInfoWith_Fields(b *testing.B) {
	s := newBenchService(b, "INFO")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.InfoWith().Str("k", "v").Int("n", i).Msg("hello")
	}
}

func BenchmarkDebugWith_Suppressed(b *testing.B) {
	s := newBenchService(b, "INFO")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.DebugWith().Str("k", "v").Msg("dropped")
	}
}

func BenchmarkErrorWith_DetailedChain6(b *testing.B) {
	s := newBenchService(b, "ERROR")
	err := makeDetailedChain(6)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.ErrorWith().Err(err).Msg("oops")
	}
}

func BenchmarkErrorWith_Exception(b *testing.B) {
	s := newBenchService(b, "ERROR")
	err := exception.New(errors.New("division by zero"), exception.At("calc.py", 42))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.ErrorWith().Err(err).Msg("oops")
	}
}

func BenchmarkParallel_InfoWith(b *testing.B) {
	s := newBenchService(b, "INFO")
	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			s.InfoWith().Str("k", "v").Msg("hi")
		}
	})
}

func BenchmarkLogEventBuilder_Disabled(b *testing.B) {
	logger := zerolog.New(io.Discard).Level(zerolog.ErrorLevel)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		logEventBuilder(&logger, DefaultLoggerName, zerolog.InfoLevel).Msg("dropped")
	}
}
