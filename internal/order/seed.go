package order

// sampleOrders is the first-run experience: shown when nothing has ever
// been persisted. Samples are display-only and never written back.
func sampleOrders() []Order {
	return []Order{
		{ID: 1001, Date: "2024-08-10", Status: StatusDelivered, Total: 45.50, Items: 3},
		{ID: 1002, Date: "2024-08-08", Status: StatusShipped, Total: 23.99, Items: 2},
		{ID: 1003, Date: "2024-08-05", Status: StatusProcessing, Total: 67.25, Items: 4},
		{ID: 1004, Date: "2024-08-02", Status: StatusPending, Total: 19.99, Items: 1},
	}
}
