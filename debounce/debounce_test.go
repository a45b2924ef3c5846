package debounce

import (
	"flag"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var maxRetries = flag.Int("max-retries", 0, "Maximum number of retries")

// Due to the timing-based nature of the test suite, we want to support
// automatically retrying the tests a few times to avoid flakiness.
func TestMain(m *testing.M) {
	flag.Parse()

	code := m.Run()

	for i := 0; code != 0 && i < *maxRetries; i++ {
		fmt.Fprintf(os.Stderr,
			"===\n=== WARN  Tests failed, retrying (%d/%d)...\n===\n",
			i+1, *maxRetries,
		)
		code = m.Run()
	}

	os.Exit(code)
}

type timedCase struct {
	name    string
	wait    time.Duration
	options []Option
	calls   []int64 // offsets in ms at which the debounced function is called
	cancels []int64 // offsets in ms at which the cancel function is called
	want    []int64 // offsets in ms at which invocations are expected
	margin  int64
}

func runTimedCases(t *testing.T, cases []timedCase) {
	for _, tt := range cases {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var mux sync.Mutex
			var invocations []int64

			start := time.Now()
			f := func() {
				mux.Lock()
				defer mux.Unlock()

				invocations = append(
					invocations, time.Since(start).Milliseconds(),
				)
			}

			debounced, cancel, err := New(tt.wait, f, tt.options...)
			require.NoError(t, err)

			var wg sync.WaitGroup
			for _, ms := range tt.calls {
				wg.Add(1)
				go func(ms int64) {
					defer wg.Done()
					time.Sleep(time.Duration(ms) * time.Millisecond)
					debounced()
				}(ms)
			}
			for _, ms := range tt.cancels {
				wg.Add(1)
				go func(ms int64) {
					defer wg.Done()
					time.Sleep(time.Duration(ms) * time.Millisecond)
					cancel()
				}(ms)
			}
			wg.Wait()

			// Wait out any timers that may still be pending, including a
			// max-wait timer of up to twice the wait duration.
			time.Sleep(tt.wait*2 + 600*time.Millisecond)

			mux.Lock()
			defer mux.Unlock()

			margin := tt.margin
			if margin == 0 {
				margin = 80
			}

			require.Len(t, invocations, len(tt.want),
				"invocations: %v", invocations,
			)

			got := append([]int64(nil), invocations...)
			for _, want := range tt.want {
				found := -1
				for i, inv := range got {
					if inv > want-margin && inv < want+margin {
						found = i
						break
					}
				}
				assert.NotEqualf(t, -1, found,
					"no invocation near %dms, got %v", want, invocations,
				)
				if found != -1 {
					got = append(got[:found], got[found+1:]...)
				}
			}
		})
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	runTimedCases(t, []timedCase{
		{
			name:  "one call, one trailing invocation",
			wait:  200 * time.Millisecond,
			calls: []int64{0},
			want:  []int64{200},
		},
		{
			name:  "burst coalesces into one trailing invocation",
			wait:  200 * time.Millisecond,
			calls: []int64{0, 100, 200, 300},
			want:  []int64{500},
		},
		{
			name:  "calls spaced beyond wait each invoke",
			wait:  200 * time.Millisecond,
			calls: []int64{0, 300},
			want:  []int64{200, 500},
		},
		{
			name:  "two separate bursts",
			wait:  200 * time.Millisecond,
			calls: []int64{0, 100, 600, 700},
			want:  []int64{300, 900},
		},
		{
			name:  "zero wait passes calls through",
			wait:  0,
			calls: []int64{0, 100},
			want:  []int64{0, 100},
		},
	})
}

func TestNew_withLeading(t *testing.T) {
	t.Parallel()

	runTimedCases(t, []timedCase{
		{
			name:    "burst invokes once at its start",
			wait:    200 * time.Millisecond,
			options: []Option{Leading()},
			calls:   []int64{0, 100, 200, 300},
			want:    []int64{0},
		},
		{
			name:    "quiet period allows a new leading invocation",
			wait:    200 * time.Millisecond,
			options: []Option{Leading()},
			calls:   []int64{0, 600},
			want:    []int64{0, 600},
		},
		{
			name:    "spaced calls each invoke immediately",
			wait:    200 * time.Millisecond,
			options: []Option{Leading()},
			calls:   []int64{0, 300, 600},
			want:    []int64{0, 300, 600},
		},
	})
}

func TestNew_withLeadingAndTrailing(t *testing.T) {
	t.Parallel()

	runTimedCases(t, []timedCase{
		{
			name:    "burst invokes on both edges",
			wait:    200 * time.Millisecond,
			options: []Option{Leading(), Trailing()},
			calls:   []int64{0, 100, 200},
			want:    []int64{0, 400},
		},
		{
			name:    "single call invokes only on the leading edge",
			wait:    200 * time.Millisecond,
			options: []Option{Leading(), Trailing()},
			calls:   []int64{0},
			want:    []int64{0},
		},
	})
}

func TestNew_withMaxWait(t *testing.T) {
	t.Parallel()

	runTimedCases(t, []timedCase{
		{
			name:    "sustained burst still invokes every maxWait",
			wait:    200 * time.Millisecond,
			options: []Option{MaxWait(450 * time.Millisecond)},
			calls:   []int64{0, 100, 200, 300, 400, 500, 600, 700, 800},
			want:    []int64{450, 950},
		},
		{
			name:    "maxWait not reached before the quiet period",
			wait:    200 * time.Millisecond,
			options: []Option{MaxWait(800 * time.Millisecond)},
			calls:   []int64{0, 100, 200},
			want:    []int64{400},
		},
	})
}

func TestNew_cancel(t *testing.T) {
	t.Parallel()

	runTimedCases(t, []timedCase{
		{
			name:    "cancel discards the pending invocation",
			wait:    200 * time.Millisecond,
			calls:   []int64{0, 100},
			cancels: []int64{200},
			want:    []int64{},
		},
		{
			name:    "debouncing resumes after cancel",
			wait:    200 * time.Millisecond,
			calls:   []int64{0, 400},
			cancels: []int64{100},
			want:    []int64{600},
		},
	})
}

func TestNew_validation(t *testing.T) {
	t.Parallel()

	_, _, err := New(-time.Millisecond, func() {})
	assert.ErrorIs(t, err, ErrNegativeWait)

	_, _, err = New(time.Second, nil)
	assert.ErrorIs(t, err, ErrNilFunc)
}

func TestNew_zeroWaitIsSynchronous(t *testing.T) {
	t.Parallel()

	n := 0
	debounced, cancel, err := New(0, func() { n++ })
	require.NoError(t, err)

	debounced()
	debounced()
	cancel()
	debounced()

	assert.Equal(t, 3, n)
}
