package handlers

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	Kiosk     *KioskHandler
	Speech    *SpeechHandler
	Broadcast *BroadcastHandler
}
