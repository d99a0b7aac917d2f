package commands

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/imamik/mwpack/internal/apperr"
)

const (
	sourceDateEpochFlag = "source-date-epoch"
	sourceDateEpochKey  = "source_date_epoch"
	sourceDateEpochEnv  = "SOURCE_DATE_EPOCH"
)

// addSourceDateEpochFlag registers --source-date-epoch on cmd.
func addSourceDateEpochFlag(cmd *cobra.Command) {
	cmd.Flags().Int64(sourceDateEpochFlag, 0, "Timestamp for archive entries (default: $SOURCE_DATE_EPOCH, then 0)")
}

// resolveSourceDateEpoch returns the flag value when set, else
// SOURCE_DATE_EPOCH, else 0.
func resolveSourceDateEpoch(cmd *cobra.Command) (int64, error) {
	if cmd.Flags().Changed(sourceDateEpochFlag) {
		value, err := cmd.Flags().GetInt64(sourceDateEpochFlag)
		if err != nil {
			return 0, apperr.Validation(err)
		}
		if value < 0 {
			return 0, apperr.Validationf("--source-date-epoch must be >= 0")
		}
		return value, nil
	}

	v := viper.New()
	if err := v.BindEnv(sourceDateEpochKey, sourceDateEpochEnv); err != nil {
		return 0, err
	}
	if !v.IsSet(sourceDateEpochKey) {
		return 0, nil
	}

	value, err := strconv.ParseInt(strings.TrimSpace(v.GetString(sourceDateEpochKey)), 10, 64)
	if err != nil {
		return 0, apperr.Validationf("SOURCE_DATE_EPOCH must be an integer")
	}
	if value < 0 {
		return 0, apperr.Validationf("SOURCE_DATE_EPOCH must be >= 0")
	}
	return value, nil
}
