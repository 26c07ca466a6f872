package core

import glog "github.com/goliatone/go-logger/glog"

var (
	_ Registry        = (*ProviderRegistry)(nil)
	_ ConfigProvider  = (*CfgxConfigProvider)(nil)
	_ OptionsResolver = GoOptionsResolver{}

	_ Logger         = glog.Nop()
	_ LoggerProvider = glog.ProviderFromLogger(glog.Nop())
)
