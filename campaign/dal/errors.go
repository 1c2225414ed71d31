package dal

import "errors"

var ErrCampaignNotFound = errors.New("campaign not found")
