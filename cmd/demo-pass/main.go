package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/vbncursed/vkr/wallet-service/internal/wallet"
)

func main() {
	var credsPath, issuerID string
	flag.StringVar(&credsPath, "credentials", "credentials.json", "credentials file (JSON or raw PEM)")
	flag.StringVar(&issuerID, "issuer", "3388000000000000000", "issuer namespace")
	flag.Parse()

	b := wallet.NewBuilder(issuerID, "demo-pass-1", "demo-class-1")
	b.SetPassClass("Demo Issuer").
		SetCardTitle("Demo Card").
		SetHeader("Welcome").
		SetBarcode("demo-0001", "QR_CODE").
		AddTextModule("about", "Issued by the wallet-service demo").
		AddLink("site", "https://example.com", "Demo site").
		SetValidTimeInterval(time.Now().UTC())
	if err := b.SetClassTemplateInfo(
		wallet.TwoItemsRow("object.textModulesData['about'].body", ""),
	); err != nil {
		log.Fatalf("template: %v", err)
	}

	fmt.Println("Envelope:")
	fmt.Println(b.DumpEnvelope())

	if err := b.SetCredentials(credsPath); err != nil {
		log.Fatalf("credentials: %v", err)
	}
	link, err := b.GenerateSaveLink()
	if err != nil {
		log.Fatalf("sign: %v", err)
	}
	fmt.Println("Save link:", link)
}
