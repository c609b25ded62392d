package tm

import (
	"context"
	"time"

	"github.com/tommhe14/tmkt-api/internal/scrape"
)

// latestTransfersPath filters the sitewide listing to top-ten-league
// moves above a minimum market value, mirroring the public gallery view.
const latestTransfersPath = "/transfers/neuestetransfers/statistik/plus/" +
	"?plus=0&galerie=0&wettbewerb_id=alle&land_id=&selectedOptionInternalType=nothingSelected" +
	"&minMarktwert=500.000&maxMarktwert=500.000.000&minAbloese=0&maxAbloese=500.000.000&top10=Top+10+leagues"

// LatestTransfers fetches the sitewide latest-transfers feed. The feed
// updates continuously, so it is never cached and cache_hit is always
// false.
func (s *Service) LatestTransfers(ctx context.Context) ([]scrape.LatestTransfer, bool, error) {
	doc, err := s.client.Document(ctx, latestTransfersPath, nil)
	if err != nil {
		return nil, false, err
	}
	transfers, err := scrape.ExtractLatestTransfers(doc, time.Now())
	if err != nil {
		return nil, false, err
	}
	return transfers, false, nil
}
