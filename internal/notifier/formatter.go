package notifier

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"StockScout/internal/model"
)

// FormatEmailDigest builds the subject and HTML table body for the
// buy-window email alert.
func FormatEmailDigest(results []model.ScanResult) (subject, body string) {
	subject = fmt.Sprintf("[StockScout] 🎯 %s buy-window candidates (%d)",
		time.Now().Format("01/02"), len(results))

	var b strings.Builder
	b.WriteString(fmt.Sprintf("<h2>🔥 Today's top-scoring candidates (%d)</h2>", len(results)))
	b.WriteString("<table border='1' cellpadding='10' cellspacing='0' style='border-collapse: collapse;'>")
	b.WriteString("<tr style='background-color: #f2f2f2;'><th>Name</th><th>Price</th><th>Change</th><th>Score</th><th>Conditions</th></tr>")
	for _, r := range results {
		b.WriteString(fmt.Sprintf("<tr><td><b>%s</b></td><td>₩%s</td><td>%+.2f%%</td><td><b>%.1f</b></td><td>%s</td></tr>",
			r.Name, humanize.Commaf(r.Price), r.ChangePct, r.Score, r.Passed))
	}
	b.WriteString("</table><br><p>Open the dashboard for charts and entry markers.</p>")
	return subject, b.String()
}

// FormatTelegramDigest builds the Telegram alert text. The optional
// dashboardURL is appended as a link when set.
func FormatTelegramDigest(results []model.ScanResult, dashboardURL string) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("🚨 <b>[StockScout alert]</b> 🚨\n\n<b>%d</b> candidates reached the buy window today.\n\n", len(results)))
	for _, r := range results {
		b.WriteString(fmt.Sprintf("🎯 <b>%s</b> (₩%s / %+.2f%%)\n", r.Name, humanize.Commaf(r.Price), r.ChangePct))
		b.WriteString(fmt.Sprintf("✔️ score: <b>%.1f</b>\n", r.Score))
		b.WriteString(fmt.Sprintf("✔️ conditions: %s\n", r.Passed))
		b.WriteString(fmt.Sprintf("✔️ cap: ₩%s\n\n", humanize.SIWithDigits(r.MarketCap, 1, "")))
	}
	if dashboardURL != "" {
		b.WriteString(fmt.Sprintf("👉 <a href='%s'>open the dashboard for charts</a>", dashboardURL))
	}
	return b.String()
}
