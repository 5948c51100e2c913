// cmd/seqjoin-csv2fa/main.go
package main

import (
	"seqjoin/internal/appshell"
	"seqjoin/internal/convertapp"
)

func main() { appshell.Main(convertapp.RunCSV2FA) }
