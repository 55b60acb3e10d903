package commands

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/codeninja55/go-dcmx/cmd/dcmtool/internal/config"
	"github.com/codeninja55/go-dcmx/cmd/dcmtool/internal/dicom/ui"
	"github.com/codeninja55/go-dcmx/dicom/uid"
	"github.com/codeninja55/go-dcmx/dimse/dul"
	"github.com/codeninja55/go-dcmx/dimse/pdu"
)

// EchoCmd verifies connectivity to a DICOM peer by negotiating and
// releasing an association for the Verification SOP class.
type EchoCmd struct {
	Address   string        `arg:"" help:"Peer address (host:port)"`
	CalledAE  string        `name:"called-ae" default:"ANY-SCP" help:"Called AE title"`
	CallingAE string        `name:"calling-ae" default:"DCMTOOL" help:"Calling AE title"`
	Timeout   time.Duration `name:"timeout" default:"10s" help:"Negotiation timeout"`
}

// Run executes the echo command.
func (c *EchoCmd) Run(cfg *config.GlobalConfig) error {
	if !cfg.NoBanner {
		ui.PrintBanner()
	}
	logger := log.Default()

	ctx, cancel := context.WithTimeout(context.Background(), c.Timeout)
	defer cancel()

	start := time.Now()
	assoc, err := dul.Associate(ctx, c.Address, dul.Config{
		CalledAE:  c.CalledAE,
		CallingAE: c.CallingAE,
	}, []pdu.PresentationContextRQ{
		{
			ID:             1,
			AbstractSyntax: uid.Verification.String(),
			TransferSyntaxes: []string{
				uid.ExplicitVRLittleEndian.String(),
				uid.ImplicitVRLittleEndian.String(),
			},
		},
	})
	if err != nil {
		return err
	}

	logger.Info("association established",
		"peer", c.Address,
		"called_ae", assoc.CalledAE(),
		"max_pdu", assoc.Machine().NegotiatedMaxPDU(),
		"contexts", len(assoc.AcceptedPresentationContexts()),
		"elapsed", time.Since(start),
	)

	if err := assoc.Release(ctx); err != nil {
		return err
	}
	logger.Info("association released", "elapsed", time.Since(start))
	return nil
}
