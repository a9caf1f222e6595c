// Author: identityrecord maintainers
// Last updated: Oct 19, 2026
// Last modified by: identityrecord maintainers

package main

import (
	"identityrecord/config"
	"identityrecord/contract"

	"github.com/hyperledger/fabric-chaincode-go/shim"
	"github.com/hyperledger/fabric-contract-api-go/contractapi"
	"github.com/hyperledger/fabric/common/flogging"
)

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		panic("Error loading configuration: " + err.Error())
	}
	if err := cfg.Validate(); err != nil {
		panic("Invalid configuration: " + err.Error())
	}
	flogging.ActivateSpec(cfg.LogSpec)
	logger := flogging.MustGetLogger("identityrecord")

	cc, err := contractapi.NewChaincode(contract.NewIdentityContract())
	if err != nil {
		panic("Error creating IdentityContract chaincode: " + err.Error())
	}
	cc.Info.Title = "identityrecord"
	cc.Info.Version = "1.0.0"

	if !cfg.External() {
		if err := cc.Start(); err != nil {
			panic("Error starting chaincode: " + err.Error())
		}
		return
	}

	tlsProps, err := cfg.TLSProperties()
	if err != nil {
		panic("Error loading chaincode TLS material: " + err.Error())
	}
	server := &shim.ChaincodeServer{
		CCID:     cfg.CCID,
		Address:  cfg.ServerAddress,
		CC:       cc,
		TLSProps: tlsProps,
	}
	logger.Infof("Starting identityrecord chaincode service on %s", cfg.ServerAddress)
	if err := server.Start(); err != nil {
		panic("Error starting chaincode server: " + err.Error())
	}
}
