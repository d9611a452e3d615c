//go:generate mockgen -source=../store_client.go -destination=./mock_store_client.go -package=mocks
//go:generate mockgen -source=../validator.go    -destination=./mock_validator.go    -package=mocks
//go:generate mockgen -source=../result_sink.go  -destination=./mock_result_sink.go  -package=mocks
//go:generate mockgen -source=../logger.go       -destination=./mock_logger.go       -package=mocks

package mocks
