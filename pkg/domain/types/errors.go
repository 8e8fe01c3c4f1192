package types

import "github.com/m-mizutani/goerr/v2"

// Error tags classifying why a release list could not be loaded
var (
	ErrTagNetwork        = goerr.NewTag("network")
	ErrTagUpstreamStatus = goerr.NewTag("upstream_status")
	ErrTagParse          = goerr.NewTag("parse")
)
