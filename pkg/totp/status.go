package totp

import "time"

// CodeStatus describes where "now" sits inside the current time step.
type CodeStatus struct {
	TimeRemaining int     // Seconds until the next step boundary, always 1..period
	Progress      float64 // Elapsed fraction of the step, 0 <= Progress < 1
}

// Status computes the countdown for period at unix seconds now.
// At an exact step boundary TimeRemaining is the full period of the new step, never zero.
func Status(period int, now int64) CodeStatus {
	if period <= 0 {
		period = DefaultPeriod
	}
	elapsed := int(now % int64(period))
	if elapsed < 0 {
		elapsed += period
	}
	remaining := period - elapsed
	return CodeStatus{
		TimeRemaining: remaining,
		Progress:      float64(period-remaining) / float64(period),
	}
}

// Account is the per-account input of GenerateCodes.
type Account struct {
	ID     string
	Secret string // Base32 plaintext secret
	Period int    // Step in seconds, DefaultPeriod when <= 0
}

// CodeResult is the code for one account at one instant.
// Current is empty and Err is set when the account secret is unusable.
type CodeResult struct {
	Current string
	CodeStatus
	Err error
}

// GenerateCodes evaluates every account against the same instant, so countdowns
// of accounts sharing a period always agree. Each account uses its own period.
func GenerateCodes(accounts []Account, now time.Time) map[string]CodeResult {
	codes := make(map[string]CodeResult, len(accounts))
	unix := now.Unix()
	for _, acc := range accounts {
		res := CodeResult{CodeStatus: Status(acc.Period, unix)}
		res.Current, res.Err = GenerateCodeAt(acc.Secret, acc.Period, now)
		codes[acc.ID] = res
	}
	return codes
}
