package usecase

import (
	"context"
	"time"

	"voice-ordering/internal/menu"
	"voice-ordering/internal/voiceorder"
	"voice-ordering/internal/voiceorder/extract"
	"voice-ordering/internal/voiceorder/session"
	"voice-ordering/pkg/datemath"
	"voice-ordering/pkg/log"
)

const (
	DefaultCustomerName     = "Customer"
	DefaultGreetingTemplate = "Hello, %s! Which dinner would you like to order today?"
)

// Options tunes the conversation engine.
type Options struct {
	FallbackCustomerName string
	// GreetingTemplate takes the customer name as its only verb.
	GreetingTemplate string
	// RecoverUnknownSession starts a new session when a turn names an unknown one.
	RecoverUnknownSession bool
	// EnforceFutureDeliveryDate refuses completion unless the delivery date is after today.
	EnforceFutureDeliveryDate bool
}

// implUseCase is the private implementation of voiceorder.UseCase.
type implUseCase struct {
	l         log.Logger
	registry  *session.Registry
	catalog   menu.UseCase
	extractor *extract.Extractor
	completer voiceorder.Completer
	dates     *datemath.Parser
	opts      Options
	now       func() time.Time
}

// New creates a new voiceorder UseCase implementation.
func New(
	l log.Logger,
	registry *session.Registry,
	catalog menu.UseCase,
	extractor *extract.Extractor,
	completer voiceorder.Completer,
	dates *datemath.Parser,
	opts Options,
) *implUseCase {
	if opts.FallbackCustomerName == "" {
		opts.FallbackCustomerName = DefaultCustomerName
	}
	if !ValidGreetingTemplate(opts.GreetingTemplate) {
		if opts.GreetingTemplate != "" {
			l.Warnf(context.Background(), "usecase.New: greeting template %q needs exactly one %%s, using default", opts.GreetingTemplate)
		}
		opts.GreetingTemplate = DefaultGreetingTemplate
	}
	return &implUseCase{
		l:         l,
		registry:  registry,
		catalog:   catalog,
		extractor: extractor,
		completer: completer,
		dates:     dates,
		opts:      opts,
		now:       time.Now,
	}
}

// ValidGreetingTemplate reports whether tmpl has exactly one verb and that verb
// is %s. Escaped percent signs are allowed.
func ValidGreetingTemplate(tmpl string) bool {
	verbs := 0
	for i := 0; i < len(tmpl); i++ {
		if tmpl[i] != '%' {
			continue
		}
		if i+1 >= len(tmpl) {
			return false
		}
		i++
		switch tmpl[i] {
		case '%':
		case 's':
			verbs++
		default:
			return false
		}
	}
	return verbs == 1
}
