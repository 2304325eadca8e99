package resolver

// Alias maps a lowercase company name to its traded ticker symbol.
type Alias struct {
	Name   string
	Ticker string
}

// AliasTable is an ordered list of name aliases. Order matters: matching is
// first-hit, and some names are substrings of later ones ("square" shadows
// "square enix"), so reordering changes resolution results.
type AliasTable []Alias

// DefaultAliases returns the built-in alias table. LSE-listed names carry
// the .L suffix; the tail covers the large US and Japanese names users ask
// about even though the tool is UK-centric.
func DefaultAliases() AliasTable {
	return AliasTable{
		{"hsbc", "HSBC.L"},
		{"barclays", "BARC.L"},
		{"lloyds", "LLOY.L"},
		{"rbs", "RBS.L"},
		{"natwest", "NWG.L"},
		{"unilever", "ULVR.L"},
		{"glaxosmithkline", "GSK.L"},
		{"astrazeneca", "AZN.L"},
		{"bp", "BP.L"},
		{"shell", "SHEL.L"},
		{"royal dutch shell", "SHEL.L"},
		{"british american tobacco", "BATS.L"},
		{"imperial brands", "IMB.L"},
		{"diageo", "DGE.L"},
		{"rio tinto", "RIO.L"},
		{"bhp", "BHP.L"},
		{"anglo american", "AAL.L"},
		{"glencore", "GLEN.L"},
		{"vodafone", "VOD.L"},
		{"bt", "BT-A.L"},
		{"british telecom", "BT-A.L"},
		{"centrica", "CNA.L"},
		{"national grid", "NG.L"},
		{"ssp", "SSPG.L"},
		{"sage", "SGE.L"},
		{"just eat", "JET.L"},
		{"deliveroo", "ROO.L"},
		{"ocado", "OCDO.L"},
		{"asos", "ASC.L"},
		{"boohoo", "BOO.L"},
		{"next", "NXT.L"},
		{"marks and spencer", "MKS.L"},
		{"tesco", "TSCO.L"},
		{"sainsbury", "SBRY.L"},
		{"morrisons", "MRW.L"},
		{"persimmon", "PSN.L"},
		{"barratt", "BDEV.L"},
		{"taylor wimpey", "TW.L"},
		{"berkeley", "BKG.L"},
		{"land securities", "LAND.L"},
		{"british land", "BLND.L"},
		{"segro", "SGRO.L"},
		{"rightmove", "RMV.L"},
		{"zoopla", "ZPLA.L"},
		{"autotrader", "AUTO.L"},
		{"halma", "HLMA.L"},
		{"spirax sarco", "SPX.L"},
		{"renishaw", "RSW.L"},
		{"weir", "WEIR.L"},
		{"melrose", "MRO.L"},
		{"rolls royce", "RR.L"},
		{"bae systems", "BA.L"},
		{"cobham", "COB.L"},
		{"g4s", "GFS.L"},
		{"serco", "SRP.L"},
		{"capita", "CPI.L"},
		{"mitie", "MTO.L"},
		{"compass", "CPG.L"},
		{"whitbread", "WTB.L"},
		{"intercontinental hotels", "IHG.L"},
		{"easyjet", "EZJ.L"},
		{"international airlines group", "IAG.L"},
		{"ryanair", "RYA.L"},
		{"wizz air", "WIZZ.L"},
		{"carnival", "CCL.L"},
		{"tui", "TUI.L"},
		{"thomas cook", "TCG.L"},
		{"sports direct", "SPD.L"},
		{"jd sports", "JD.L"},
		{"frasers", "FRAS.L"},
		{"superdry", "SDRY.L"},
		{"ted baker", "TED.L"},
		{"burberry", "BRBY.L"},
		{"mulberry", "MUL.L"},
		{"jimmy choo", "CHOO.L"},
		{"missguided", "MGID.L"},
		{"pretty little thing", "PLT.L"},
		{"na-kd", "NAKD.L"},
		{"revolve", "RVLV.L"},
		{"stitch fix", "SFIX.L"},
		{"wayfair", "W.L"},
		{"etsy", "ETSY.L"},
		{"shopify", "SHOP.L"},
		{"square", "SQ.L"},
		{"stripe", "STRIPE.L"},
		{"klarna", "KLARNA.L"},
		{"monzo", "MONZO.L"},
		{"revolut", "REVOLUT.L"},
		{"transferwise", "WISE.L"},
		{"wise", "WISE.L"},
		{"checkout.com", "CHECKOUT.L"},
		{"rapyd", "RAPYD.L"},
		{"go cardless", "GOCARDLESS.L"},
		{"sumup", "SUMUP.L"},
		{"worldpay", "WP.L"},
		{"nortonlifelock", "NLOK.L"},
		{"avast", "AVST.L"},
		{"kaspersky", "KASPERSKY.L"},
		{"trend micro", "TMIC.L"},
		{"crowdstrike", "CRWD.L"},
		{"palo alto networks", "PANW.L"},
		{"fortinet", "FTNT.L"},
		{"check point", "CHKP.L"},
		{"symantec", "SYMC.L"},
		{"mcafee", "MCFE.L"},
		{"bitdefender", "BITDEFENDER.L"},
		{"malwarebytes", "MALWAREBYTES.L"},
		{"eset", "ESET.L"},
		{"sophos", "SOPHOS.L"},
		{"f-secure", "F-SECURE.L"},
		{"bullguard", "BULLGUARD.L"},
		{"avg", "AVG.L"},
		{"avira", "AVIRA.L"},
		{"norton", "NORTON.L"},
		{"microsoft", "MSFT"},
		{"apple", "AAPL"},
		{"google", "GOOGL"},
		{"alphabet", "GOOGL"},
		{"amazon", "AMZN"},
		{"facebook", "META"},
		{"meta", "META"},
		{"netflix", "NFLX"},
		{"tesla", "TSLA"},
		{"nvidia", "NVDA"},
		{"amd", "AMD"},
		{"intel", "INTC"},
		{"qualcomm", "QCOM"},
		{"broadcom", "AVGO"},
		{"cisco", "CSCO"},
		{"oracle", "ORCL"},
		{"salesforce", "CRM"},
		{"adobe", "ADBE"},
		{"paypal", "PYPL"},
		{"visa", "V"},
		{"mastercard", "MA"},
		{"american express", "AXP"},
		{"discovery", "DISCA"},
		{"warner bros", "WBD"},
		{"paramount", "PARA"},
		{"comcast", "CMCSA"},
		{"verizon", "VZ"},
		{"at&t", "T"},
		{"att", "T"},
		{"t-mobile", "TMUS"},
		{"sprint", "S"},
		{"charter", "CHTR"},
		{"cablevision", "CVC"},
		{"time warner", "TWX"},
		{"viacom", "VIAB"},
		{"cbs", "CBS"},
		{"fox", "FOX"},
		{"news corp", "NWSA"},
		{"21st century fox", "FOXA"},
		{"disney", "DIS"},
		{"marvel", "MARVEL"},
		{"lucasfilm", "LUCASFILM"},
		{"star wars", "STARWARS"},
		{"pixar", "PIXAR"},
		{"dreamworks", "DWA"},
		{"universal", "CMCSA"},
		{"sony", "6758.T"},
		{"nintendo", "7974.T"},
		{"electronic arts", "EA"},
		{"activision blizzard", "ATVI"},
		{"take two", "TTWO"},
		{"ubisoft", "UBI.PA"},
		{"capcom", "9697.T"},
		{"konami", "9766.T"},
		{"sega", "6460.T"},
		{"bandai namco", "7832.T"},
		{"square enix", "9684.T"},
	}
}
