package console

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
)

const dateLayout = "2006-01-02 15:04"

var podiumColors = []string{"#FFD700", "#C0C0C0", "#CD7F32"}

// PrintLeaderboard - writes the records as a ranked table. Colours are dropped when w is not a terminal.
func PrintLeaderboard(w io.Writer, records []*entity.Record) error {
	output := termenv.NewOutput(w)

	title := output.String("Fastest wins").Bold().Underline()
	if _, err := fmt.Fprintln(w, title); err != nil {
		return fmt.Errorf("failed to print leaderboard: %w", err)
	}

	if len(records) == 0 {
		_, err := fmt.Fprintln(w, output.String("no records yet").Faint())
		return err
	}

	for i, record := range records {
		line := fmt.Sprintf("%3d. %-24s %5ds  %s",
			i+1, record.PlayerName, record.ElapsedSeconds, record.CreatedAt.Local().Format(dateLayout))

		style := output.String(line)
		if i < len(podiumColors) {
			style = style.Foreground(output.Color(podiumColors[i])).Bold()
		}

		if _, err := fmt.Fprintln(w, style); err != nil {
			return fmt.Errorf("failed to print leaderboard: %w", err)
		}
	}

	return nil
}
