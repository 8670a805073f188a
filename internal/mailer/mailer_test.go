package mailer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/mailflow/internal/mailer"
)

func TestSendParamsValidate(t *testing.T) {
	t.Parallel()

	valid := mailer.SendParams{
		To:       "user@example.com",
		Subject:  "Test Subject",
		HTMLBody: "<p>Test body</p>",
	}

	tests := []struct {
		name   string
		mutate func(*mailer.SendParams)
		errMsg string
	}{
		{
			name:   "valid params",
			mutate: func(p *mailer.SendParams) {},
		},
		{
			name:   "valid with name and text body",
			mutate: func(p *mailer.SendParams) { p.ToName = "Jane"; p.TextBody = "Test body" },
		},
		{
			name:   "empty To",
			mutate: func(p *mailer.SendParams) { p.To = "" },
			errMsg: "To is required",
		},
		{
			name:   "whitespace To",
			mutate: func(p *mailer.SendParams) { p.To = "   " },
			errMsg: "To is required",
		},
		{
			name:   "malformed To",
			mutate: func(p *mailer.SendParams) { p.To = "not-an-email" },
			errMsg: "To must be a valid email address",
		},
		{
			name:   "missing domain",
			mutate: func(p *mailer.SendParams) { p.To = "user@" },
			errMsg: "To must be a valid email address",
		},
		{
			name:   "empty subject",
			mutate: func(p *mailer.SendParams) { p.Subject = " " },
			errMsg: "Subject is required",
		},
		{
			name:   "empty html body",
			mutate: func(p *mailer.SendParams) { p.HTMLBody = "" },
			errMsg: "HTMLBody is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			params := valid
			tt.mutate(&params)
			err := params.Validate()
			if tt.errMsg == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, mailer.ErrInvalidParams)
			assert.ErrorContains(t, err, tt.errMsg)
		})
	}
}
