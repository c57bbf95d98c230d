package registry

// Sources is the catalog of ingestable data-source types. Registration order
// sets SortOrder so clients list the types the way the console groups them.
var Sources = NewRegistry()

func init() {
	for i, desc := range sourceCatalog {
		desc.SortOrder = i
		Sources.MustRegister(desc)
	}
}

var sourceCatalog = []*Descriptor{
	{
		Tag:         "mqtt",
		Label:       "MQTT",
		Icon:        "rss",
		Category:    "Messaging",
		Description: "Connect to MQTT brokers for real-time messaging",
		Fields: []FieldSpec{
			{Name: "brokerAddress", Label: "Broker Address", Kind: KindText, Placeholder: "mqtt.example.com", Required: true},
			{Name: "port", Label: "Port", Kind: KindNumber, Placeholder: "1883", Required: true, Min: bound(1), Max: bound(65535)},
			{Name: "topic", Label: "Topic", Kind: KindText, Placeholder: "sensors/temperature", Required: true},
			{Name: "qos", Label: "Quality of Service", Kind: KindSelect, Placeholder: "0", Options: []Option{
				{Value: "0", Label: "0 - At most once"},
				{Value: "1", Label: "1 - At least once"},
				{Value: "2", Label: "2 - Exactly once"},
			}},
			{Name: "username", Label: "Username", Kind: KindText, Placeholder: "Optional"},
			{Name: "password", Label: "Password", Kind: KindPassword, Placeholder: "Optional"},
			{Name: "clientId", Label: "Client ID", Kind: KindText, Placeholder: "Auto-generated if empty"},
		},
	},
	{
		Tag:         "modbus_tcp",
		Label:       "MODBUS (TCP)",
		Icon:        "server",
		Category:    "Industrial",
		Description: "Connect to MODBUS TCP devices over network",
		Fields: []FieldSpec{
			{Name: "ipAddress", Label: "IP Address", Kind: KindText, Placeholder: "192.168.1.10", Required: true},
			{Name: "port", Label: "Port", Kind: KindNumber, Placeholder: "502", Required: true, Min: bound(1), Max: bound(65535)},
			{Name: "slaveId", Label: "Slave/Unit ID", Kind: KindNumber, Placeholder: "1", Required: true, Min: bound(1), Max: bound(255)},
			{Name: "registerType", Label: "Register Type", Kind: KindSelect, Placeholder: "Holding Register", Options: []Option{
				{Value: "coil", Label: "Coil (0x)"},
				{Value: "discrete", Label: "Discrete Input (1x)"},
				{Value: "input", Label: "Input Register (3x)"},
				{Value: "holding", Label: "Holding Register (4x)"},
			}},
			{Name: "startAddress", Label: "Start Address", Kind: KindNumber, Placeholder: "40001", Required: true},
			{Name: "quantity", Label: "Number of Registers", Kind: KindNumber, Placeholder: "1", Required: true, Min: bound(1), Max: bound(125)},
			{Name: "timeout", Label: "Timeout (ms)", Kind: KindNumber, Placeholder: "5000", Min: bound(100), Max: bound(30000)},
		},
	},
	{
		Tag:         "modbus_rtu",
		Label:       "MODBUS (RTU)",
		Icon:        "sliders-horizontal",
		Category:    "Industrial",
		Description: "Connect to MODBUS RTU devices via serial communication",
		Fields: []FieldSpec{
			{Name: "comPort", Label: "COM Port", Kind: KindText, Placeholder: "COM3", Required: true},
			{Name: "baudRate", Label: "Baud Rate", Kind: KindSelect, Placeholder: "9600", Required: true, Options: baudRates(false)},
			{Name: "dataBits", Label: "Data Bits", Kind: KindSelect, Placeholder: "8", Options: []Option{
				{Value: "7", Label: "7"},
				{Value: "8", Label: "8"},
			}},
			{Name: "stopBits", Label: "Stop Bits", Kind: KindSelect, Placeholder: "1", Options: []Option{
				{Value: "1", Label: "1"},
				{Value: "2", Label: "2"},
			}},
			{Name: "parity", Label: "Parity", Kind: KindSelect, Placeholder: "None", Options: []Option{
				{Value: "none", Label: "None"},
				{Value: "even", Label: "Even"},
				{Value: "odd", Label: "Odd"},
			}},
			{Name: "slaveId", Label: "Slave ID", Kind: KindNumber, Placeholder: "1", Required: true, Min: bound(1), Max: bound(255)},
		},
	},
	{
		Tag:         "tcp",
		Label:       "TCP",
		Icon:        "cable",
		Category:    "Network",
		Description: "Raw TCP socket connection",
		Fields: []FieldSpec{
			{Name: "host", Label: "Host", Kind: KindText, Placeholder: "localhost", Required: true},
			{Name: "port", Label: "Port", Kind: KindNumber, Placeholder: "9999", Required: true, Min: bound(1), Max: bound(65535)},
			{Name: "timeout", Label: "Connection Timeout (ms)", Kind: KindNumber, Placeholder: "5000", Min: bound(100), Max: bound(30000)},
		},
	},
	{
		Tag:         "udp",
		Label:       "UDP",
		Icon:        "cable",
		Category:    "Network",
		Description: "UDP socket connection for datagram communication",
		Fields: []FieldSpec{
			{Name: "host", Label: "Host", Kind: KindText, Placeholder: "localhost", Required: true},
			{Name: "port", Label: "Port", Kind: KindNumber, Placeholder: "9998", Required: true, Min: bound(1), Max: bound(65535)},
			{Name: "bufferSize", Label: "Buffer Size (bytes)", Kind: KindNumber, Placeholder: "1024", Min: bound(64), Max: bound(65536)},
		},
	},
	{
		Tag:         "serial",
		Label:       "SERIAL",
		Icon:        "usb",
		Category:    "Serial",
		Description: "Serial port communication (RS232/RS485)",
		Fields: []FieldSpec{
			{Name: "comPort", Label: "COM Port", Kind: KindText, Placeholder: "COM3", Required: true},
			{Name: "baudRate", Label: "Baud Rate", Kind: KindSelect, Placeholder: "9600", Required: true, Options: baudRates(true)},
			{Name: "dataBits", Label: "Data Bits", Kind: KindSelect, Placeholder: "8", Options: []Option{
				{Value: "5", Label: "5"},
				{Value: "6", Label: "6"},
				{Value: "7", Label: "7"},
				{Value: "8", Label: "8"},
			}},
			{Name: "stopBits", Label: "Stop Bits", Kind: KindSelect, Placeholder: "1", Options: []Option{
				{Value: "1", Label: "1"},
				{Value: "1.5", Label: "1.5"},
				{Value: "2", Label: "2"},
			}},
			{Name: "parity", Label: "Parity", Kind: KindSelect, Placeholder: "None", Options: []Option{
				{Value: "none", Label: "None"},
				{Value: "even", Label: "Even"},
				{Value: "odd", Label: "Odd"},
				{Value: "mark", Label: "Mark"},
				{Value: "space", Label: "Space"},
			}},
			{Name: "flowControl", Label: "Flow Control", Kind: KindSelect, Placeholder: "None", Options: []Option{
				{Value: "none", Label: "None"},
				{Value: "hardware", Label: "Hardware (RTS/CTS)"},
				{Value: "software", Label: "Software (XON/XOFF)"},
			}},
		},
	},
	{
		Tag:         "rest",
		Label:       "API (REST)",
		Icon:        "webhook",
		Category:    "API",
		Description: "HTTP REST API endpoint",
		Fields: []FieldSpec{
			{Name: "endpointUrl", Label: "Endpoint URL", Kind: KindText, Placeholder: "https://api.example.com/data", Required: true, Pattern: `^https?://`},
			{Name: "method", Label: "HTTP Method", Kind: KindSelect, Placeholder: "GET", Options: []Option{
				{Value: "GET", Label: "GET"},
				{Value: "POST", Label: "POST"},
				{Value: "PUT", Label: "PUT"},
				{Value: "DELETE", Label: "DELETE"},
			}},
			{Name: "headers", Label: "Headers (JSON)", Kind: KindText, Placeholder: `{"Content-Type": "application/json"}`},
			{Name: "apiKey", Label: "API Key", Kind: KindPassword, Placeholder: "your-api-key"},
			{Name: "authType", Label: "Authentication", Kind: KindSelect, Placeholder: "None", Options: []Option{
				{Value: "none", Label: "None"},
				{Value: "bearer", Label: "Bearer Token"},
				{Value: "basic", Label: "Basic Auth"},
				{Value: "apikey", Label: "API Key"},
			}},
			{Name: "pollInterval", Label: "Poll Interval (seconds)", Kind: KindNumber, Placeholder: "60", Min: bound(1), Max: bound(3600)},
		},
	},
	{
		Tag:         "soap",
		Label:       "API (SOAP)",
		Icon:        "webhook",
		Category:    "API",
		Description: "SOAP web service endpoint",
		Fields: []FieldSpec{
			{Name: "wsdlUrl", Label: "WSDL URL", Kind: KindText, Placeholder: "https://api.example.com/service?wsdl", Required: true, Pattern: `^https?://`},
			{Name: "operation", Label: "Operation/Method", Kind: KindText, Placeholder: "GetData", Required: true},
			{Name: "namespace", Label: "Namespace", Kind: KindText, Placeholder: "http://example.com/webservice"},
			{Name: "username", Label: "Username", Kind: KindText, Placeholder: "Optional"},
			{Name: "password", Label: "Password", Kind: KindPassword, Placeholder: "Optional"},
			{Name: "timeout", Label: "Timeout (seconds)", Kind: KindNumber, Placeholder: "30", Min: bound(1), Max: bound(300)},
		},
	},
	{
		Tag:         "iot",
		Label:       "Generic IoT",
		Icon:        "radio-tower",
		Category:    "IoT",
		Description: "Generic IoT platform connection",
		Fields: []FieldSpec{
			{Name: "deviceId", Label: "Device ID", Kind: KindText, Placeholder: "iot-device-001", Required: true},
			{Name: "endpoint", Label: "IoT Platform Endpoint", Kind: KindText, Placeholder: "iot.cloud.com", Required: true},
			{Name: "protocol", Label: "Protocol", Kind: KindSelect, Placeholder: "HTTPS", Options: []Option{
				{Value: "https", Label: "HTTPS"},
				{Value: "mqtt", Label: "MQTT"},
				{Value: "coap", Label: "CoAP"},
				{Value: "websocket", Label: "WebSocket"},
			}},
			{Name: "accessKey", Label: "Access Key", Kind: KindPassword, Placeholder: "your-access-key", Required: true},
			{Name: "secretKey", Label: "Secret Key", Kind: KindPassword, Placeholder: "your-secret-key"},
			{Name: "region", Label: "Region", Kind: KindText, Placeholder: "us-east-1"},
		},
	},
}

// baudRates lists the serial baud rate options; the plain serial source also
// supports 300 baud, MODBUS RTU does not.
func baudRates(include300 bool) []Option {
	rates := []string{"1200", "2400", "4800", "9600", "19200", "38400", "57600", "115200"}
	if include300 {
		rates = append([]string{"300"}, rates...)
	}
	options := make([]Option, len(rates))
	for i, rate := range rates {
		options[i] = Option{Value: rate, Label: rate}
	}
	return options
}
