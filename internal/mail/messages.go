package mail

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/text/language"
	xmessage "golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/depositflow/depositflow/internal/application"
)

var gb = xmessage.NewPrinter(language.BritishEnglish)

// formatPounds renders a whole-pound amount with GB digit grouping.
func formatPounds(amount int64) string {
	return gb.Sprintf("£%v", number.Decimal(amount))
}

func greeting(name string) string {
	if name == "" {
		return "Hi there,"
	}

	return fmt.Sprintf("Hi %s,", name)
}

// OfferCreated tells the tenant their instant offer is ready and when it
// expires.
func (c *Client) OfferCreated(ctx context.Context, to application.Contact, advanceAmount int64, expiresAt time.Time) error {
	amount := formatPounds(advanceAmount)
	subject := fmt.Sprintf("Your DepositFlow offer: %s is ready", amount)

	html := fmt.Sprintf(`<h1>Your instant offer is ready</h1>
<p>%s</p>
<p>We've reviewed your application and we're ready to advance you <strong>%s</strong> today.</p>
<p><strong>This offer expires:</strong> %s</p>
<p><a href="%s/offer">View &amp; Accept Offer</a></p>
<p>Questions? Reply to this email or contact support@depositflow.co.uk</p>`,
		greeting(to.Name), amount, expiresAt.Format("Monday, 2 January 15:04"), c.siteURL)

	return c.send(ctx, to.Email, subject, html)
}

// DeedSigned confirms the Deed of Assignment was signed and the advance is on
// its way.
func (c *Client) DeedSigned(ctx context.Context, to application.Contact, advanceAmount int64) error {
	amount := formatPounds(advanceAmount)

	html := fmt.Sprintf(`<h1>Funds incoming!</h1>
<p>%s</p>
<p>Your Deed of Assignment has been signed and your advance of <strong>%s</strong> is being processed.</p>
<p>Funds will arrive within 2 hours during business hours (Mon-Fri 9am-6pm).</p>
<p><a href="%s/status">View Status</a></p>
<p>Questions? Reply to this email or contact support@depositflow.co.uk</p>`,
		greeting(to.Name), amount, c.siteURL)

	return c.send(ctx, to.Email, "Deed signed - your funds are on their way", html)
}

// MagicLink delivers a single-use sign-in link.
func (c *Client) MagicLink(ctx context.Context, email, url string) error {
	html := fmt.Sprintf(`<h1>Sign in to DepositFlow</h1>
<p>Click the link below to sign in. It can only be used once.</p>
<p><a href="%s">Sign in</a></p>
<p>If you didn't request this, you can safely ignore this email.</p>`, url)

	return c.send(ctx, email, "Sign in to DepositFlow", html)
}
