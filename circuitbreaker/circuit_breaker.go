package circuitbreaker

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/afex/hystrix-go/hystrix"
)

type FallbackFunc func() ([]any, error)

type FunctorCallStatus struct {
	name string
	err  error
}

func (s FunctorCallStatus) Name() string {
	return s.name
}

func (s FunctorCallStatus) Error() error {
	return s.err
}

type CommandResult struct {
	res                 []any
	err                 error
	cancelled           bool
	functorCallStatuses []FunctorCallStatus
}

func (cr CommandResult) Result() []any {
	return cr.res
}

func (cr CommandResult) Error() error {
	return cr.err
}

func (cr CommandResult) Cancelled() bool {
	return cr.cancelled
}

func (cr CommandResult) FunctorCallStatuses() []FunctorCallStatus {
	return cr.functorCallStatuses
}

func (cr *CommandResult) addCallStatus(circuitName string, err error) {
	cr.functorCallStatuses = append(cr.functorCallStatuses, FunctorCallStatus{
		name: circuitName,
		err:  err,
	})
}

type Command struct {
	ctx      context.Context
	functors []*Functor
	cancel   atomic.Bool
}

func NewCommand(ctx context.Context, functors []*Functor) *Command {
	return &Command{
		ctx:      ctx,
		functors: functors,
	}
}

func (cmd *Command) Add(ftor *Functor) {
	cmd.functors = append(cmd.functors, ftor)
}

func (cmd *Command) IsEmpty() bool {
	return len(cmd.functors) == 0
}

func (cmd *Command) Cancel() {
	cmd.cancel.Store(true)
}

type Config struct {
	Timeout                int
	MaxConcurrentRequests  int
	RequestVolumeThreshold int
	SleepWindow            int
	ErrorPercentThreshold  int
}

type CircuitBreaker struct {
	config Config
}

func NewCircuitBreaker(config Config) *CircuitBreaker {
	return &CircuitBreaker{
		config: config,
	}
}

type Functor struct {
	exec        FallbackFunc
	circuitName string
}

func NewFunctor(exec FallbackFunc, circuitName string) *Functor {
	return &Functor{
		exec:        exec,
		circuitName: circuitName,
	}
}

// Executes the command in its circuit if set.
// If the command's circuit is not configured, the circuit of the CircuitBreaker is used.
// The last functor is always executed outside of its circuit, so a single remaining
// provider is still tried when every circuit is open.
// This is a blocking function.
func (cb *CircuitBreaker) Execute(cmd *Command) CommandResult {
	if cmd == nil || cmd.IsEmpty() {
		return CommandResult{err: fmt.Errorf("command is nil or empty")}
	}

	var result CommandResult
	ctx := cmd.ctx
	if ctx == nil {
		ctx = context.Background()
	}

	for i, f := range cmd.functors {
		if cmd.cancel.Load() || ctx.Err() != nil {
			result.cancelled = true
			break
		}

		var err error
		if i == len(cmd.functors)-1 {
			var res []any
			res, err = f.exec()
			if err == nil {
				result.res = res
				result.err = nil
			}
			result.addCallStatus(f.circuitName, err)
		} else {
			if hystrix.GetCircuitSettings()[f.circuitName] == nil {
				hystrix.ConfigureCommand(f.circuitName, hystrix.CommandConfig{
					Timeout:                cb.config.Timeout,
					MaxConcurrentRequests:  cb.config.MaxConcurrentRequests,
					RequestVolumeThreshold: cb.config.RequestVolumeThreshold,
					SleepWindow:            cb.config.SleepWindow,
					ErrorPercentThreshold:  cb.config.ErrorPercentThreshold,
				})
			}

			// hystrix may give up on a running functor (timeout), so the functor
			// hands its result over a channel instead of writing to result.
			resCh := make(chan []any, 1)
			err = hystrix.DoC(ctx, f.circuitName, func(ctx context.Context) error {
				res, err := f.exec()
				if err == nil {
					resCh <- res
				}
				return err
			}, nil)
			if err == nil {
				result.res = <-resCh
				result.err = nil
			}
			result.addCallStatus(f.circuitName, err)
		}

		if err == nil {
			break
		}

		// Accumulate errors
		if result.err != nil {
			result.err = fmt.Errorf("%w, %s.error: %w", result.err, f.circuitName, err)
		} else {
			result.err = fmt.Errorf("%s.error: %w", f.circuitName, err)
		}
		// Lets abuse every provider with the same amount of MaxConcurrentRequests,
		// keep iterating even in case of ErrMaxConcurrency error
	}

	return result
}

func CircuitExists(circuitName string) bool {
	_, exists := hystrix.GetCircuitSettings()[circuitName]
	return exists
}

func IsCircuitOpen(circuitName string) bool {
	circuit, wasCreated, _ := hystrix.GetCircuit(circuitName)
	return !wasCreated && circuit.IsOpen()
}
