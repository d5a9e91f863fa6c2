package main

import (
	"os"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/reoring/goform"
	"github.com/reoring/goform/memdom"
)

type replayReport struct {
	Events      []outcome    `json:"events"`
	Phase       goform.Phase `json:"phase"`
	SubmitCount int          `json:"submit_count"`
	Valid       bool         `json:"valid"`
	State       goform.State `json:"state"`
}

func newReplayCmd(g *globalFlags) *cobra.Command {
	var manifestPath, eventsPath string
	cmd := &cobra.Command{
		Use:   "replay",
		Short: "Replay input, blur and submit events against a form",
		Long: `Replay builds the form described by the manifest on an in-memory form
element and applies a stream of JSON events, for example:

  {"type":"input","path":"name","value":"Ada"}
  {"type":"blur","path":"name"}
  {"type":"add","path":"hobbies","value":""}
  {"type":"remove","path":"hobbies","index":0}
  {"type":"submit"}

It prints what happened to each event and the final state.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log := g.logger()
			m, err := loadManifest(manifestPath)
			if err != nil {
				return err
			}
			opts, err := m.Options(log)
			if err != nil {
				return err
			}
			file, err := os.Open(eventsPath)
			if err != nil {
				return err
			}
			defer file.Close()
			events, err := decodeEvents(file)
			if err != nil {
				return err
			}

			dom := memdom.New(m.Action)
			f, err := goform.New(opts, dom)
			if err != nil {
				return err
			}
			defer f.Close()

			report := replayReport{}
			for i, e := range events {
				o := e.apply(f, dom)
				o.Seq = i + 1
				if o.Error != "" {
					log.Warn("event failed", zap.Int("seq", o.Seq), zap.String("type", o.Type), zap.String("error", o.Error))
				}
				report.Events = append(report.Events, o)
			}
			report.Phase = f.Phase()
			report.SubmitCount = f.SubmitCount()
			report.Valid = f.IsValid()
			report.State = f.State()

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(report)
		},
	}
	cmd.Flags().StringVarP(&manifestPath, "manifest", "m", "", "form manifest (YAML or JSON)")
	cmd.Flags().StringVarP(&eventsPath, "events", "e", "", "file of JSON events")
	_ = cmd.MarkFlagRequired("manifest")
	_ = cmd.MarkFlagRequired("events")
	return cmd
}
