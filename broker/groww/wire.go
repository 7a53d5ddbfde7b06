package groww

// Wire payloads for the Groww REST API. Prices travel as decimal strings;
// omitted optional fields are left out of the JSON entirely.

type placePayload struct {
	TradingSymbol    string `json:"trading_symbol"`
	Quantity         int    `json:"quantity"`
	Price            string `json:"price,omitempty"`
	TriggerPrice     string `json:"trigger_price,omitempty"`
	Validity         string `json:"validity"`
	Exchange         string `json:"exchange"`
	Segment          string `json:"segment"`
	Product          string `json:"product"`
	OrderType        string `json:"order_type"`
	TransactionType  string `json:"transaction_type"`
	OrderReferenceID string `json:"order_reference_id"`
}

type modifyPayload struct {
	GrowwOrderID string `json:"groww_order_id"`
	Quantity     int    `json:"quantity"`
	OrderType    string `json:"order_type"`
	Segment      string `json:"segment"`
	Price        string `json:"price,omitempty"`
	TriggerPrice string `json:"trigger_price,omitempty"`
}

type cancelPayload struct {
	GrowwOrderID string `json:"groww_order_id"`
	Segment      string `json:"segment"`
}

type ackResponse struct {
	GrowwOrderID string `json:"groww_order_id"`
	OrderStatus  string `json:"order_status"`
}

type wireOrder struct {
	GrowwOrderID     string  `json:"groww_order_id"`
	TradingSymbol    string  `json:"trading_symbol"`
	Exchange         string  `json:"exchange"`
	Segment          string  `json:"segment"`
	Token            string  `json:"token"`
	TransactionType  string  `json:"transaction_type"`
	OrderType        string  `json:"order_type"`
	OrderStatus      string  `json:"order_status"`
	Product          string  `json:"product"`
	Quantity         int     `json:"quantity"`
	Price            float64 `json:"price"`
	TriggerPrice     float64 `json:"trigger_price"`
	CreatedAt        string  `json:"created_at"`
	OrderReferenceID string  `json:"order_reference_id"`
}

type orderListResponse struct {
	OrderList []wireOrder `json:"order_list"`
}

type wireTrade struct {
	OrderID         string  `json:"order_id"`
	TradingSymbol   string  `json:"trading_symbol"`
	Exchange        string  `json:"exchange"`
	TransactionType string  `json:"transaction_type"`
	Product         string  `json:"product"`
	TradedQuantity  int     `json:"traded_quantity"`
	TradedPrice     float64 `json:"traded_price"`
	TradeTime       string  `json:"trade_time"`
}

type tradeListResponse struct {
	TradeList []wireTrade `json:"trade_list"`
}

type wirePosition struct {
	TradingSymbol string  `json:"trading_symbol"`
	Exchange      string  `json:"exchange"`
	Token         string  `json:"token"`
	Product       string  `json:"product"`
	NetQuantity   int     `json:"net_quantity"`
	AvgPrice      float64 `json:"avg_price"`
}

type positionListResponse struct {
	Positions []wirePosition `json:"positions"`
}

type wireHolding struct {
	TradingSymbol string  `json:"trading_symbol"`
	Exchange      string  `json:"exchange"`
	TotalQuantity int     `json:"total_quantity"`
	AvgCostPrice  float64 `json:"avg_cost_price"`
}

type holdingListResponse struct {
	Holdings []wireHolding `json:"holdings"`
}
